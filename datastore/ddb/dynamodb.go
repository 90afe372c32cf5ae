/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/suparena/pedigreestore/datastore"
	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/registry"
	"github.com/suparena/pedigreestore/storagemodels"
)

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
type DynamodbDataStore[T any] struct {
	client    API
	tableName string
	lookup    LookupConfig
	mapping   registry.Mapping
}

var _ datastore.DataStore[storagemodels.Proband] = (*DynamodbDataStore[storagemodels.Proband])(nil)

// Option configures a DynamodbDataStore.
type Option func(*LookupConfig)

// WithIDIndex looks rows up by id through the named global secondary index.
func WithIDIndex(name string) Option {
	return func(c *LookupConfig) {
		c.Mode = LookupIndex
		c.IndexName = name
	}
}

// WithScanLookup looks rows up by id with a filtered table scan.
func WithScanLookup() Option {
	return func(c *LookupConfig) {
		c.Mode = LookupScan
	}
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T. T must
// have an index map registered.
func NewDynamodbDataStore[T any](client API, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	mapping, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %T", storeerrors.ErrNoIndexMap, *new(T))
	}
	if tableName == "" {
		return nil, errors.New("table name is required")
	}

	lookup := DefaultLookupConfig()
	for _, opt := range opts {
		opt(&lookup)
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		lookup:    lookup,
		mapping:   mapping,
	}, nil
}

// GetOne retrieves a single row by its exact key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key storagemodels.Key) (*T, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyAttributes(key),
	})
	if err != nil {
		return nil, wrapAPIError("GetItem", err)
	}
	if out.Item == nil {
		return nil, storeerrors.NewNotFoundError(d.mapping.EntityType, key.String())
	}
	return d.decode(out.Item)
}

// Put stores the given entity using the index map to populate pk and sk. The
// type attribute is always set from the registered entity type.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T, cond datastore.WriteCondition) error {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := registry.Expand(d.mapping.IndexMap, entity)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av[storagemodels.AttrType] = &types.AttributeValueMemberS{Value: d.mapping.EntityType}

	input := &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	}
	if err := applyCondition(cond, func(expr expression.Expression) {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
	}); err != nil {
		return err
	}

	if _, err := d.client.PutItem(ctx, input); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			key := storagemodels.Key{PK: expanded[storagemodels.AttrPK], SK: expanded[storagemodels.AttrSK]}
			cause := storeerrors.NewNotFoundError(d.mapping.EntityType, key.String())
			if cond == datastore.MustNotExist {
				cause = storeerrors.NewAlreadyExistsError(d.mapping.EntityType, key.String())
			}
			return storeerrors.WrapConditionFailed("PutItem", cond.Expression(), cause)
		}
		return wrapAPIError("PutItem", err)
	}
	return nil
}

// Delete removes the row under key. Deleting an absent row is a failed
// condition wrapping a NotFoundError.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key storagemodels.Key) error {
	input := &sdk.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyAttributes(key),
	}
	if err := applyCondition(datastore.MustExist, func(expr expression.Expression) {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
	}); err != nil {
		return err
	}

	if _, err := d.client.DeleteItem(ctx, input); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return storeerrors.WrapConditionFailed("DeleteItem", datastore.MustExist.Expression(),
				storeerrors.NewNotFoundError(d.mapping.EntityType, key.String()))
		}
		return wrapAPIError("DeleteItem", err)
	}
	return nil
}

func (d *DynamodbDataStore[T]) decode(item map[string]types.AttributeValue) (*T, error) {
	result := new(T)
	if err := attributevalue.UnmarshalMap(item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

func keyAttributes(key storagemodels.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		storagemodels.AttrPK: &types.AttributeValueMemberS{Value: key.PK},
		storagemodels.AttrSK: &types.AttributeValueMemberS{Value: key.SK},
	}
}

// applyCondition builds the key-existence condition for cond and hands it to
// set.
func applyCondition(cond datastore.WriteCondition, set func(expression.Expression)) error {
	var builder expression.ConditionBuilder
	switch cond {
	case datastore.MustNotExist:
		builder = expression.AttributeNotExists(expression.Name(storagemodels.AttrPK))
	case datastore.MustExist:
		builder = expression.AttributeExists(expression.Name(storagemodels.AttrPK))
	default:
		return fmt.Errorf("unknown write condition %d", cond)
	}

	expr, err := expression.NewBuilder().WithCondition(builder).Build()
	if err != nil {
		return fmt.Errorf("failed to build condition: %w", err)
	}
	set(expr)
	return nil
}

// wrapAPIError keeps the service error code visible in the message.
func wrapAPIError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s failed (%s): %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
