/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pedigree

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	"github.com/suparena/pedigreestore/datastore"
	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/logging"
	"github.com/suparena/pedigreestore/storagemodels"
)

// CreateProband validates body and stores a new proband under a fresh id.
// Required fields: name, sex, diagnosis (strings) and age (integer).
func (s *Service) CreateProband(ctx context.Context, body []byte) (*storagemodels.Proband, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	var v validator
	name := v.requireString(obj, "name")
	sex := v.requireString(obj, "sex")
	age := v.requireInt(obj, "age")
	diagnosis := v.requireString(obj, "diagnosis")
	if err := v.err(); err != nil {
		return nil, err
	}

	id := s.newID()
	key := storagemodels.ProbandKey(id.String())
	row := storagemodels.Proband{
		PK:        key.PK,
		SK:        key.SK,
		ID:        id,
		Type:      storagemodels.TypeProband,
		Name:      name,
		Sex:       sex,
		Age:       age,
		Diagnosis: diagnosis,
		CreatedAt: s.timestamp(),
	}
	if err := s.probands.Put(ctx, row, datastore.MustNotExist); err != nil {
		return nil, fmt.Errorf("create proband: %w", err)
	}

	logging.FromContext(ctx).Debug("proband created", zap.String("id", id.String()))
	return &row, nil
}

// GetProband returns the proband anchored at PROBAND#<id>.
func (s *Service) GetProband(ctx context.Context, id string) (*storagemodels.Proband, error) {
	// Proband ids are always generated UUIDs; anything else cannot exist.
	if !strfmt.IsUUID(id) {
		return nil, storeerrors.NewNotFoundError(storagemodels.TypeProband, id)
	}

	row, err := s.probands.GetOne(ctx, storagemodels.ProbandKey(id))
	if err != nil {
		return nil, fmt.Errorf("get proband: %w", err)
	}
	return row, nil
}
