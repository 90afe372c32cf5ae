/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import "fmt"

// LookupMode selects how FindByID locates a row when only its id is known.
type LookupMode string

const (
	// LookupIndex queries a global secondary index partitioned on the id attribute.
	LookupIndex LookupMode = "index"
	// LookupScan scans the whole table with an id filter. It reads every row
	// and is meant for tables provisioned without the index.
	LookupScan LookupMode = "scan"
)

// DefaultIDIndex is the GSI name used when none is configured.
const DefaultIDIndex = "id-index"

// LookupConfig holds the id lookup strategy
type LookupConfig struct {
	Mode LookupMode
	// IndexName is the GSI whose partition key is the id attribute.
	IndexName string
}

// DefaultLookupConfig returns the index lookup on DefaultIDIndex.
func DefaultLookupConfig() LookupConfig {
	return LookupConfig{Mode: LookupIndex, IndexName: DefaultIDIndex}
}

// ParseLookupMode accepts "index" or "scan".
func ParseLookupMode(s string) (LookupMode, error) {
	switch LookupMode(s) {
	case LookupIndex, LookupScan:
		return LookupMode(s), nil
	default:
		return "", fmt.Errorf("unknown lookup mode %q", s)
	}
}
