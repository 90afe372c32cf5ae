/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Attribute names shared by every row in the table.
const (
	AttrPK   = "pk"
	AttrSK   = "sk"
	AttrID   = "id"
	AttrType = "type"
)

// Key prefixes.
const (
	PrefixProband = "PROBAND#"
	PrefixFamily  = "FAMILY#"
)

// Key is the composite primary key of a row.
type Key struct {
	PK string
	SK string
}

func (k Key) String() string {
	return k.PK + "|" + k.SK
}

// ProbandKey is the self-referential key of a proband's anchor row.
func ProbandKey(id string) Key {
	return Key{PK: PrefixProband + id, SK: PrefixProband + id}
}

// FamilyPartition is the partition holding a proband's family members.
func FamilyPartition(probandID string) string {
	return PrefixProband + probandID
}

// FamilyMemberKey is the key of one family member row.
func FamilyMemberKey(probandID, id string) Key {
	return Key{PK: FamilyPartition(probandID), SK: PrefixFamily + id}
}

// QueryParams selects rows of one partition, optionally narrowed to sort keys
// starting with SortKeyPrefix.
type QueryParams struct {
	// PartitionKey is matched exactly against pk.
	PartitionKey string
	// SortKeyPrefix, when set, becomes begins_with(sk, prefix).
	SortKeyPrefix string
}
