package errs

import (
	"errors"
	"fmt"
)

var ErrAlreadyExists = errors.New("value already exists")

// AlreadyExistsError reports that Value of ParamName is already held by another
// active record of Entity.
type AlreadyExistsError struct {
	Entity    string
	ParamName string
	Value     any
	Cause     error
}

func NewAlreadyExistsError(entity, paramName string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity:    entity,
		ParamName: paramName,
		Value:     value,
	}
}

func NewAlreadyExistsErrorWithCause(entity, paramName string, value any, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity:    entity,
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *AlreadyExistsError) Error() string {
	msg := fmt.Sprintf("%s: %s %s %s", ErrAlreadyExists, e.Entity, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}
