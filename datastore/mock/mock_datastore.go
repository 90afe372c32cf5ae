/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface
// for tests and local runs.
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/pedigreestore/datastore"
	"github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/registry"
	"github.com/suparena/pedigreestore/storagemodels"
)

type row[T any] struct {
	key    storagemodels.Key
	id     string
	entity T
}

// DataStore is an in-memory datastore.DataStore[T]. Keys are derived from the
// registered index map exactly as the DynamoDB implementation derives them.
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[storagemodels.Key]row[T]
	getError    error
	putError    error
	queryError  error
	deleteError error
}

var _ datastore.DataStore[storagemodels.FamilyMember] = (*DataStore[storagemodels.FamilyMember])(nil)

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[storagemodels.Key]row[T]),
	}
}

// WithGetError makes GetOne and FindByID return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithQueryError makes Query operations return an error
func (m *DataStore[T]) WithQueryError(err error) *DataStore[T] {
	m.queryError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key storagemodels.Key) (*T, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if r, exists := m.data[key]; exists {
		entity := r.entity
		return &entity, nil
	}
	return nil, errors.NewNotFoundError(entityType[T](), key.String())
}

// Put stores an entity under the key expanded from its index map
func (m *DataStore[T]) Put(ctx context.Context, entity T, cond datastore.WriteCondition) error {
	if m.putError != nil {
		return m.putError
	}

	r, err := newRow(entity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.data[r.key]
	switch cond {
	case datastore.MustNotExist:
		if exists {
			return errors.WrapConditionFailed("put", cond.Expression(),
				errors.NewAlreadyExistsError(entityType[T](), r.key.String()))
		}
	case datastore.MustExist:
		if !exists {
			return errors.WrapConditionFailed("put", cond.Expression(),
				errors.NewNotFoundError(entityType[T](), r.key.String()))
		}
	default:
		return fmt.Errorf("unknown write condition %d", cond)
	}
	m.data[r.key] = r
	return nil
}

// Query returns the rows of one partition ordered by sort key
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}
	if params == nil || params.PartitionKey == "" {
		return nil, fmt.Errorf("query requires a partition key")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]row[T], 0)
	for k, r := range m.data {
		if k.PK == params.PartitionKey && strings.HasPrefix(k.SK, params.SortKeyPrefix) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].key.SK < matched[j].key.SK })

	results := make([]T, 0, len(matched))
	for _, r := range matched {
		results = append(results, r.entity)
	}
	return results, nil
}

// FindByID locates an entity by its id attribute
func (m *DataStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.data {
		if r.id == id {
			entity := r.entity
			return &entity, nil
		}
	}
	return nil, errors.NewNotFoundError(entityType[T](), id)
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key storagemodels.Key) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.WrapConditionFailed("delete", datastore.MustExist.Expression(),
			errors.NewNotFoundError(entityType[T](), key.String()))
	}
	delete(m.data, key)
	return nil
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func newRow[T any](entity T) (row[T], error) {
	mapping, ok := registry.GetIndexMap[T]()
	if !ok {
		return row[T]{}, errors.ErrNoIndexMap
	}
	expanded, err := registry.Expand(mapping.IndexMap, entity)
	if err != nil {
		return row[T]{}, err
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return row[T]{}, fmt.Errorf("failed to marshal entity: %w", err)
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av[storagemodels.AttrType] = &types.AttributeValueMemberS{Value: mapping.EntityType}

	// Round-trip so the stored entity carries the same pk, sk and type the
	// DynamoDB implementation would write.
	var stored T
	if err := attributevalue.UnmarshalMap(av, &stored); err != nil {
		return row[T]{}, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	var id string
	if s, ok := av[storagemodels.AttrID].(*types.AttributeValueMemberS); ok {
		id = s.Value
	}

	return row[T]{
		key:    storagemodels.Key{PK: expanded[storagemodels.AttrPK], SK: expanded[storagemodels.AttrSK]},
		id:     id,
		entity: stored,
	}, nil
}

func entityType[T any]() string {
	if mapping, ok := registry.GetIndexMap[T](); ok {
		return mapping.EntityType
	}
	return fmt.Sprintf("%T", *new(T))
}
