// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEntry     = errors.New("duplicate entry") // For cases like registering an existing username
)

// IsError reports whether err wraps target, for mapping service errors
// to HTTP responses at the API boundary.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
