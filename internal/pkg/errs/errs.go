package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the category matched by every error that reports malformed or
// missing input. It is never returned directly.
var ErrValidation = errors.New("validation failed")

func sanitize(value any) string {
	if value == nil {
		return "unbounded"
	}
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

func isValidation(target error) bool {
	return target == ErrValidation
}
