package errs

import (
	"errors"
	"fmt"
)

var ErrIntegrityViolation = errors.New("integrity violation")

// IntegrityViolationError reports an operation that would break the ownership link
// between two records, for example deleting a shipment through an order that does
// not own it. It also matches ErrValidation.
type IntegrityViolationError struct {
	Reason string
	Cause  error
}

func NewIntegrityViolationError(reason string) *IntegrityViolationError {
	return &IntegrityViolationError{
		Reason: reason,
	}
}

func NewIntegrityViolationErrorWithCause(reason string, cause error) *IntegrityViolationError {
	return &IntegrityViolationError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *IntegrityViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrIntegrityViolation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrIntegrityViolation, e.Reason)
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

func (e *IntegrityViolationError) Is(target error) bool {
	return isValidation(target)
}
