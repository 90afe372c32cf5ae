/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "github.com/suparena/pedigreestore/registry"

// Index maps use attribute names as macros, so {proband_id} reads the
// proband_id attribute of the marshaled row.
func init() {
	registry.RegisterIndexMap[Proband](TypeProband, map[string]string{
		AttrPK: PrefixProband + "{id}",
		AttrSK: PrefixProband + "{id}",
	})
	registry.RegisterIndexMap[FamilyMember](TypeFamilyMember, map[string]string{
		AttrPK: PrefixProband + "{proband_id}",
		AttrSK: PrefixFamily + "{id}",
	})
}
