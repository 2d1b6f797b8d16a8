package errs

import "errors"

// Sentinel errors shared across usecase layers; handlers map these to HTTP statuses.
var (
	// Validation errors (caller error, never retried)
	ErrValidation = errors.New("validation error")

	// Merchant errors
	ErrMerchantNotFound = errors.New("merchant not found")

	// Resource errors
	ErrResourceNotFound  = errors.New("resource not found")
	ErrDuplicateResource = errors.New("resource already exists")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
