/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type apiCall[T, U any] = func(context.Context, *T, ...func(*sdk.Options)) (*U, error)

// mockClient is an expectation-based stand-in for the DynamoDB client. Any
// call without an expectation fails the test.
type mockClient struct {
	GetFunc    apiCall[sdk.GetItemInput, sdk.GetItemOutput]
	PutFunc    apiCall[sdk.PutItemInput, sdk.PutItemOutput]
	DeleteFunc apiCall[sdk.DeleteItemInput, sdk.DeleteItemOutput]
	QueryFunc  apiCall[sdk.QueryInput, sdk.QueryOutput]
	ScanFunc   apiCall[sdk.ScanInput, sdk.ScanOutput]
}

var _ API = (*mockClient)(nil)

func newMockClient(t *testing.T) *mockClient {
	return &mockClient{
		GetFunc:    unexpected[sdk.GetItemInput, sdk.GetItemOutput](t, "GetItem"),
		PutFunc:    unexpected[sdk.PutItemInput, sdk.PutItemOutput](t, "PutItem"),
		DeleteFunc: unexpected[sdk.DeleteItemInput, sdk.DeleteItemOutput](t, "DeleteItem"),
		QueryFunc:  unexpected[sdk.QueryInput, sdk.QueryOutput](t, "Query"),
		ScanFunc:   unexpected[sdk.ScanInput, sdk.ScanOutput](t, "Scan"),
	}
}

func unexpected[T, U any](t *testing.T, op string) apiCall[T, U] {
	return func(context.Context, *T, ...func(*sdk.Options)) (*U, error) {
		t.Fatalf("unexpected %s call", op)
		return nil, nil
	}
}

func (m *mockClient) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return m.GetFunc(ctx, params, optFns...)
}

func (m *mockClient) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	return m.PutFunc(ctx, params, optFns...)
}

func (m *mockClient) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	return m.DeleteFunc(ctx, params, optFns...)
}

func (m *mockClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	return m.QueryFunc(ctx, params, optFns...)
}

func (m *mockClient) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return m.ScanFunc(ctx, params, optFns...)
}

func s(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func n(v string) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: v}
}

// hasValue reports whether an expression value map binds v as a string.
func hasValue(values map[string]types.AttributeValue, v string) bool {
	for _, av := range values {
		if sv, ok := av.(*types.AttributeValueMemberS); ok && sv.Value == v {
			return true
		}
	}
	return false
}
