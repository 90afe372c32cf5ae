/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package pedigree implements the proband and family member operations.

A Service validates request bodies, generates identifiers and timestamps, and
persists rows through two datastore.DataStore instances that share one table:

	PROBAND#<id>        / PROBAND#<id>   proband
	PROBAND#<proband>   / FAMILY#<id>    family member

Validation reports every failing field at once as errors.ValidationErrors, in
the order the fields are declared. Lookups of unknown identifiers surface as
errors.NotFoundError; anything else is a storage fault.
*/
package pedigree
