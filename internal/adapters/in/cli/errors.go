package cli

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// FormatError renders err with its category, e.g.
// "validation: value is required: number".
func FormatError(err error) string {
	return fmt.Sprintf("%s: %v", errs.CategoryOf(err), err)
}
