package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates an insert lost to a store-level uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated indicates no acting user could be resolved for the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidSignature indicates a webhook body failed HMAC verification.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrMalformedEvent indicates a webhook body decoded into an unusable shape.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrUpstream indicates a payment gateway call failed.
	ErrUpstream = errors.New("payment gateway failure")
	// ErrValidation indicates caller input failed a field check. Build these
	// with Validationf; match them with errors.Is.
	ErrValidation = errors.New("invalid input")
)

// Validationf builds a field-level validation error. The formatted message is
// what callers see; errors.Is(err, ErrValidation) still matches.
func Validationf(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }
