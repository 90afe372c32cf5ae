/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// Entity type names stored in the type attribute.
const (
	TypeProband      = "proband"
	TypeFamilyMember = "family_member"
)

// TimestampLayout is a naive UTC ISO-8601 timestamp with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Proband is the primary subject of a pedigree.
type Proband struct {
	PK        string      `json:"pk" dynamodbav:"pk"`
	SK        string      `json:"sk" dynamodbav:"sk"`
	ID        strfmt.UUID `json:"id" dynamodbav:"id"`
	Type      string      `json:"type" dynamodbav:"type"`
	Name      string      `json:"name" dynamodbav:"name"`
	Sex       string      `json:"sex" dynamodbav:"sex"`
	Age       int         `json:"age" dynamodbav:"age"`
	Diagnosis string      `json:"diagnosis" dynamodbav:"diagnosis"`
	CreatedAt string      `json:"created_at" dynamodbav:"created_at"`
}

// FamilyMember is a relative of a proband, stored in the proband's partition.
type FamilyMember struct {
	PK           string      `json:"pk" dynamodbav:"pk"`
	SK           string      `json:"sk" dynamodbav:"sk"`
	ID           strfmt.UUID `json:"id" dynamodbav:"id"`
	Type         string      `json:"type" dynamodbav:"type"`
	Name         string      `json:"name" dynamodbav:"name"`
	Sex          string      `json:"sex" dynamodbav:"sex"`
	Relationship string      `json:"relationship" dynamodbav:"relationship"`
	ProbandID    string      `json:"proband_id" dynamodbav:"proband_id"`
	// Age is nil when unknown and persisted as NULL.
	Age       *int   `json:"age" dynamodbav:"age"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty" dynamodbav:"updated_at,omitempty"`
}
