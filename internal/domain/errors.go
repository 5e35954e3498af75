package domain

import "errors"

var (
	// ErrNotFound covers both a genuinely absent entity and a denied
	// access: callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a store-level write rejection. The cause is not
	// inspected; it is reported back as a generic retryable failure.
	ErrConflict = errors.New("unable to save changes, try again, and if the problem persists see your system administrator")
)

// ValidationError reports a single invalid field to the immediate caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
