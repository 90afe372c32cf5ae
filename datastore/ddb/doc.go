/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design: every entity type shares one table keyed by pk/sk
  - Macro-based key expansion from the registry (e.g. "PROBAND#{proband_id}")
  - Automatic type injection so entity types sharing a partition stay apart
  - Conditional writes for create (key must be free) and replace (key must exist)
  - Id lookups through a global secondary index, or a paginated scan

Construction:

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{Region: "us-east-1"})
	members, err := ddb.NewDynamodbDataStore[storagemodels.FamilyMember](
	    client, "pedigree-ai-backend-dev",
	    ddb.WithIDIndex("id-index"),
	)

The id index must use the id attribute as its partition key; any projection,
including KEYS_ONLY, works because every hit is read back from the base table
and its type checked there. Tables without the index can fall back to
ddb.WithScanLookup(), which reads the whole table per lookup.

A failed write condition is an errors.ConditionFailedError wrapping the
AlreadyExistsError or NotFoundError it implies.
*/
package ddb
