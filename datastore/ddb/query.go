/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/storagemodels"
)

// Query returns the rows of one partition, following LastEvaluatedKey until
// the partition is exhausted. Rows of other entity types sharing the
// partition are filtered out.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if params == nil || params.PartitionKey == "" {
		return nil, errors.New("query requires a partition key")
	}

	keyCond := expression.Key(storagemodels.AttrPK).Equal(expression.Value(params.PartitionKey))
	if params.SortKeyPrefix != "" {
		keyCond = keyCond.And(expression.Key(storagemodels.AttrSK).BeginsWith(params.SortKeyPrefix))
	}
	expr, err := expression.NewBuilder().
		WithKeyCondition(keyCond).
		WithFilter(d.typeFilter()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &sdk.QueryInput{
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	results := make([]T, 0)
	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError("Query", err)
		}
		for _, item := range page.Items {
			row, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			results = append(results, *row)
		}
	}
	return results, nil
}

// FindByID locates the row of T whose id attribute equals id, using the
// configured lookup mode.
func (d *DynamodbDataStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var (
		item map[string]types.AttributeValue
		err  error
	)
	switch d.lookup.Mode {
	case LookupScan:
		item, err = d.scanByID(ctx, id)
	default:
		item, err = d.queryByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, storeerrors.NewNotFoundError(d.mapping.EntityType, id)
	}
	return d.decode(item)
}

// queryByID queries the id index without a type filter, since a keys-only
// index does not carry the type attribute. The type is checked on the row
// read back from the base table.
func (d *DynamodbDataStore[T]) queryByID(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(storagemodels.AttrID).Equal(expression.Value(id))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup expression: %w", err)
	}

	paginator := sdk.NewQueryPaginator(d.client, &sdk.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 aws.String(d.lookup.IndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError("Query", err)
		}
		for _, indexed := range page.Items {
			item, err := d.refetch(ctx, indexed)
			if err != nil {
				return nil, err
			}
			if d.hasType(item) {
				return item, nil
			}
		}
	}
	return nil, nil
}

// refetch reads the full row from the base table. The index may project only
// key attributes and can lag behind the table.
func (d *DynamodbDataStore[T]) refetch(ctx context.Context, indexed map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	pk, okPK := indexed[storagemodels.AttrPK].(*types.AttributeValueMemberS)
	sk, okSK := indexed[storagemodels.AttrSK].(*types.AttributeValueMemberS)
	if !okPK || !okSK {
		return nil, errors.New("index item is missing pk or sk")
	}
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyAttributes(storagemodels.Key{PK: pk.Value, SK: sk.Value}),
	})
	if err != nil {
		return nil, wrapAPIError("GetItem", err)
	}
	return out.Item, nil
}

// hasType reports whether item is a row of T. A nil item, deleted since the
// index was read, is not.
func (d *DynamodbDataStore[T]) hasType(item map[string]types.AttributeValue) bool {
	t, ok := item[storagemodels.AttrType].(*types.AttributeValueMemberS)
	return ok && t.Value == d.mapping.EntityType
}

func (d *DynamodbDataStore[T]) scanByID(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	filter := expression.Name(storagemodels.AttrID).Equal(expression.Value(id)).And(d.typeFilter())
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	paginator := sdk.NewScanPaginator(d.client, &sdk.ScanInput{
		TableName:                 aws.String(d.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError("Scan", err)
		}
		if len(page.Items) > 0 {
			return page.Items[0], nil
		}
	}
	return nil, nil
}

func (d *DynamodbDataStore[T]) typeFilter() expression.ConditionBuilder {
	return expression.Name(storagemodels.AttrType).Equal(expression.Value(d.mapping.EntityType))
}
