package validators

import "errors"

// Error messages for validation
var (
	// Entity validation errors
	ErrEntityNameEmpty     = errors.New("entity name cannot be empty")
	ErrEntityNameHasSpaces = errors.New("entity name cannot contain spaces")
	ErrDuplicateEntity     = errors.New("duplicate entity name")

	// Field validation errors
	ErrFieldNameEmpty = errors.New("field name cannot be empty")
	ErrDuplicateField = errors.New("duplicate field name")
)
