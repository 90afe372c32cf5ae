/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/pedigreestore/storagemodels"
)

// WriteCondition guards a Put against the current state of the row's key.
// Every write is conditional; the zero value is invalid.
type WriteCondition int

const (
	// MustNotExist fails with an AlreadyExistsError if the key is taken.
	MustNotExist WriteCondition = iota + 1
	// MustExist fails with a NotFoundError if the key is absent.
	MustExist
)

// Expression returns the DynamoDB condition text for c.
func (c WriteCondition) Expression() string {
	switch c {
	case MustNotExist:
		return "attribute_not_exists(pk)"
	case MustExist:
		return "attribute_exists(pk)"
	default:
		return "unknown"
	}
}

type DataStore[T any] interface {
	// GetOne returns the row stored under key, or a NotFoundError.
	GetOne(ctx context.Context, key storagemodels.Key) (*T, error)

	// Put writes entity under the key derived from its index map. A failed
	// condition is a ConditionFailedError wrapping the AlreadyExistsError or
	// NotFoundError it implies.
	Put(ctx context.Context, entity T, cond WriteCondition) error

	// Query returns every row of T matching params, across all pages.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)

	// FindByID locates a row of T by its id attribute alone, or returns a NotFoundError.
	FindByID(ctx context.Context, id string) (*T, error)

	// Delete removes the row stored under key. An absent row is a
	// ConditionFailedError wrapping a NotFoundError.
	Delete(ctx context.Context, key storagemodels.Key) error
}
