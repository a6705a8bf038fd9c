package errs

import (
	"errors"
	"fmt"
)

var ErrStore = errors.New("store failure")

// StoreError wraps a failure of the underlying store with the operation, entity and
// identity it was serving. Both ErrStore and the original cause are reachable through
// errors.Is and errors.As.
type StoreError struct {
	Op     string
	Entity string
	ID     any
	Cause  error
}

func NewStoreError(op, entity string, cause error) *StoreError {
	return &StoreError{
		Op:     op,
		Entity: entity,
		Cause:  cause,
	}
}

func NewStoreErrorWithID(op, entity string, id any, cause error) *StoreError {
	return &StoreError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Cause:  cause,
	}
}

func (e *StoreError) Error() string {
	target := e.Entity
	if e.ID != nil {
		target = fmt.Sprintf("%s %s", e.Entity, sanitize(e.ID))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrStore, e.Op, target, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrStore, e.Op, target)
}

func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStore}
	}
	return []error{ErrStore, e.Cause}
}
