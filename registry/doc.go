/*
Package registry manages index mapping for the pedigree store.

The registry lets several entity kinds share one DynamoDB table: each Go type
is registered with the entity type name written to its rows and an index map
whose templates produce the row's key attributes.

	registry.RegisterIndexMap[FamilyMember]("family_member", map[string]string{
	    "pk": "PROBAND#{proband_id}",
	    "sk": "FAMILY#{id}",
	})

Macros name attributes of the marshaled row (dynamodbav names, not Go field
names). The registry is thread-safe and is populated from init functions.
*/
package registry
