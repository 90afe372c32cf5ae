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

// CreateFamilyMember validates body and stores a new member in the partition
// of body.proband_id. The proband is not required to exist, but proband_id
// must be non-empty.
func (s *Service) CreateFamilyMember(ctx context.Context, body []byte) (*storagemodels.FamilyMember, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	var v validator
	name := v.requireString(obj, "name")
	sex := v.requireString(obj, "sex")
	relationship := v.requireString(obj, "relationship")
	probandID := v.requireKeyString(obj, "proband_id")
	age := v.optionalInt(obj, "age")
	if err := v.err(); err != nil {
		return nil, err
	}

	id := s.newID()
	key := storagemodels.FamilyMemberKey(probandID, id.String())
	row := storagemodels.FamilyMember{
		PK:           key.PK,
		SK:           key.SK,
		ID:           id,
		Type:         storagemodels.TypeFamilyMember,
		Name:         name,
		Sex:          sex,
		Relationship: relationship,
		ProbandID:    probandID,
		Age:          age,
		CreatedAt:    s.timestamp(),
	}
	if err := s.members.Put(ctx, row, datastore.MustNotExist); err != nil {
		return nil, fmt.Errorf("create family member: %w", err)
	}

	logging.FromContext(ctx).Debug("family member created",
		zap.String("id", id.String()),
		zap.String("proband_id", probandID),
	)
	return &row, nil
}

// ListFamilyMembers returns every family member in the proband's partition.
// An unknown proband yields an empty list.
func (s *Service) ListFamilyMembers(ctx context.Context, probandID string) ([]storagemodels.FamilyMember, error) {
	rows, err := s.members.Query(ctx, &storagemodels.QueryParams{
		PartitionKey:  storagemodels.FamilyPartition(probandID),
		SortKeyPrefix: storagemodels.PrefixFamily,
	})
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	return rows, nil
}

// updatableFields is the allow-list merged by UpdateFamilyMember, in the
// order errors are reported.
var updatableFields = []string{"name", "sex", "relationship", "age"}

// UpdateFamilyMember merges the allow-listed fields of body into the member
// with the given id and stamps updated_at. Keys are never changed and other
// body fields are ignored.
func (s *Service) UpdateFamilyMember(ctx context.Context, id string, body []byte) (*storagemodels.FamilyMember, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	row, err := s.findMember(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update family member: %w", err)
	}

	var v validator
	for _, field := range updatableFields {
		raw, ok := obj[field]
		if !ok {
			continue
		}
		switch field {
		case "name":
			row.Name = v.stringValue(field, raw)
		case "sex":
			row.Sex = v.stringValue(field, raw)
		case "relationship":
			row.Relationship = v.stringValue(field, raw)
		case "age":
			row.Age = v.nullableInt(field, raw)
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	row.UpdatedAt = s.timestamp()

	// The row may have been deleted since it was found; do not resurrect it.
	if err := s.members.Put(ctx, *row, datastore.MustExist); err != nil {
		return nil, fmt.Errorf("update family member: %w", err)
	}
	return row, nil
}

// DeleteFamilyMember removes the member with the given id from whichever
// partition holds it.
func (s *Service) DeleteFamilyMember(ctx context.Context, id string) error {
	row, err := s.findMember(ctx, id)
	if err != nil {
		return fmt.Errorf("delete family member: %w", err)
	}
	if err := s.members.Delete(ctx, storagemodels.Key{PK: row.PK, SK: row.SK}); err != nil {
		return fmt.Errorf("delete family member: %w", err)
	}

	logging.FromContext(ctx).Debug("family member deleted", zap.String("id", id))
	return nil
}

func (s *Service) findMember(ctx context.Context, id string) (*storagemodels.FamilyMember, error) {
	if !strfmt.IsUUID(id) {
		return nil, storeerrors.NewNotFoundError(storagemodels.TypeFamilyMember, id)
	}
	return s.members.FindByID(ctx, id)
}
