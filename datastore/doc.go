/*
Package datastore defines the persistence interface of the pedigree store.

DataStore[T] provides the row operations the handlers need for one entity
type T stored in the shared table:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key storagemodels.Key) (*T, error)
	    Put(ctx context.Context, entity T, cond WriteCondition) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    FindByID(ctx context.Context, id string) (*T, error)
	    Delete(ctx context.Context, key storagemodels.Key) error
	}

Implementations:
  - ddb: DynamoDB implementation of the single-table design
  - mock: In-memory implementation for tests and local runs
*/
package datastore
