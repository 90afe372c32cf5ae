/*
Package errors provides semantic error types for the pedigree store.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrAlreadyExists   = errors.New("entity already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrNoIndexMap      = errors.New("no index map found for type")
	)

Every error maps onto one of a closed set of kinds, which is what the HTTP
layer turns into a status code:

	switch errors.KindOf(err) {
	case errors.KindInvalidInput: // 400, with errors.AsValidationErrors(err)
	case errors.KindNotFound:     // 404
	default:                      // 500, detail logged only
	}

Usage:

	row, err := store.GetOne(ctx, storagemodels.ProbandKey(id))
	if errors.IsNotFound(err) {
	    // Handle not found case
	}

	// Create typed errors
	err := errors.NewNotFoundError("proband", "PROBAND#123")
	err := errors.NewValidationError("age", "value is not a valid integer")
	err := errors.WrapConditionFailed("PutItem", "attribute_exists(pk)",
	    errors.NewNotFoundError("family_member", "PROBAND#1|FAMILY#2"))
	errors.IsConditionFailed(err) // true
	errors.KindOf(err)            // KindNotFound
*/
package errors
