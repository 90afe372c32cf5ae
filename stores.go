/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pedigreestore

import (
	"context"
	"fmt"

	"github.com/suparena/pedigreestore/config"
	"github.com/suparena/pedigreestore/datastore"
	"github.com/suparena/pedigreestore/datastore/ddb"
	"github.com/suparena/pedigreestore/datastore/mock"
	"github.com/suparena/pedigreestore/storagemodels"
)

// Stores holds the typed datastores of the pedigree table.
type Stores struct {
	Probands datastore.DataStore[storagemodels.Proband]
	Members  datastore.DataStore[storagemodels.FamilyMember]
}

// OpenStores builds the datastores for the configured backend. The DynamoDB
// client is created once and shared by both stores.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &Stores{
			Probands: mock.New[storagemodels.Proband](),
			Members:  mock.New[storagemodels.FamilyMember](),
		}, nil
	case config.StoreDynamoDB:
		client, err := ddb.NewClient(ctx, cfg.ClientConfig())
		if err != nil {
			return nil, err
		}
		return NewDynamoDBStores(client, cfg.Table, cfg.StoreOptions()...)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// NewDynamoDBStores builds both datastores on one client and table.
func NewDynamoDBStores(client ddb.API, table string, opts ...ddb.Option) (*Stores, error) {
	probands, err := ddb.NewDynamodbDataStore[storagemodels.Proband](client, table, opts...)
	if err != nil {
		return nil, fmt.Errorf("proband store: %w", err)
	}
	members, err := ddb.NewDynamodbDataStore[storagemodels.FamilyMember](client, table, opts...)
	if err != nil {
		return nil, fmt.Errorf("family member store: %w", err)
	}
	return &Stores{Probands: probands, Members: members}, nil
}
