package service

import (
	"errors"
)

var (
	// ErrPermissionDenied means the caller is authenticated but not allowed
	// to touch the target entity.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthenticated means no valid session accompanied the request.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError marks a malformed or disallowed field value, such as
// assigning a goal to a deleted category. Handlers map it to a 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// invalid wraps err as a ValidationError.
func invalid(err error) error {
	return &ValidationError{Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
