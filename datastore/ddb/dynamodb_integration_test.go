//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/pedigreestore/datastore"
	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/storagemodels"
)

// getClient reads DDB_TEST_TABLE and AWS settings from .env or the environment.
func getClient(t *testing.T) (API, string) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	table := os.Getenv("DDB_TEST_TABLE")
	if table == "" {
		t.Skip("DDB_TEST_TABLE not set, skipping integration test")
	}

	client, err := NewClient(context.Background(), ClientConfig{
		Region:    os.Getenv("AWS_REGION"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	})
	require.NoError(t, err)
	return client, table
}

func TestIntegrationFamilyMemberLifecycle(t *testing.T) {
	client, table := getClient(t)
	ctx := context.Background()

	store, err := NewDynamodbDataStore[storagemodels.FamilyMember](client, table)
	require.NoError(t, err)

	probandID := uuid.NewString()
	member := storagemodels.FamilyMember{
		ID:           strfmt.UUID(uuid.NewString()),
		Name:         "Integration Relative",
		Sex:          "F",
		Relationship: "sister",
		ProbandID:    probandID,
		CreatedAt:    storagemodels.FormatTimestamp(time.Now()),
	}
	require.NoError(t, store.Put(ctx, member, datastore.MustNotExist))

	rows, err := store.Query(ctx, &storagemodels.QueryParams{
		PartitionKey:  storagemodels.FamilyPartition(probandID),
		SortKeyPrefix: storagemodels.PrefixFamily,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The id index is eventually consistent.
	require.Eventually(t, func() bool {
		_, err := store.FindByID(ctx, string(member.ID))
		return err == nil
	}, 10*time.Second, 500*time.Millisecond)

	key := storagemodels.FamilyMemberKey(probandID, string(member.ID))
	require.NoError(t, store.Delete(ctx, key))
	assert.True(t, storeerrors.IsNotFound(store.Delete(ctx, key)))
}
