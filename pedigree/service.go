/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pedigree

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/pedigreestore/datastore"
	"github.com/suparena/pedigreestore/storagemodels"
)

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a fresh entity identifier.
type IDGenerator func() strfmt.UUID

// DefaultClock returns the current UTC time.
func DefaultClock() time.Time {
	return time.Now().UTC()
}

// RandomID returns a random (version 4) UUID.
func RandomID() strfmt.UUID {
	return strfmt.UUID(uuid.NewString())
}

// Service implements the proband and family member operations on top of two
// datastores sharing one table.
type Service struct {
	probands datastore.DataStore[storagemodels.Proband]
	members  datastore.DataStore[storagemodels.FamilyMember]
	now      Clock
	newID    IDGenerator
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source used for created_at and updated_at.
func WithClock(c Clock) Option {
	return func(s *Service) { s.now = c }
}

// WithIDGenerator replaces the identifier source.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) { s.newID = g }
}

// NewService wires the service to its datastores.
func NewService(
	probands datastore.DataStore[storagemodels.Proband],
	members datastore.DataStore[storagemodels.FamilyMember],
	opts ...Option,
) *Service {
	s := &Service{
		probands: probands,
		members:  members,
		now:      DefaultClock,
		newID:    RandomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() string {
	return storagemodels.FormatTimestamp(s.now())
}
