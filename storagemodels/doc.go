/*
Package storagemodels defines the rows stored in the pedigree table and the
key scheme that places them.

Both entity kinds share one table. A proband anchors its own partition and a
family member lives in the partition of the proband it belongs to:

	Proband       pk = PROBAND#<id>          sk = PROBAND#<id>
	FamilyMember  pk = PROBAND#<proband_id>  sk = FAMILY#<id>

Every row also carries id, type ("proband" or "family_member") and
created_at; family members gain updated_at once edited.

The key templates are registered with the registry package in init, so any
datastore can derive a row's key from the row itself:

	key := storagemodels.ProbandKey(id)
	params := &storagemodels.QueryParams{
	    PartitionKey:  storagemodels.FamilyPartition(probandID),
	    SortKeyPrefix: storagemodels.PrefixFamily,
	}
*/
package storagemodels
