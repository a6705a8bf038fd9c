package kernel

import (
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
)

// DateLayout is the only accepted text form of a calendar date.
const DateLayout = time.DateOnly

// NewDate returns the calendar date at UTC midnight.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's location.
// Dates read back from the store and dates typed by a user compare equal after DateOf.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date in the local time zone.
func Today() time.Time {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD date.
//
// Example:
//
//	dispatch, err := kernel.ParseDate("2025-05-10", "dispatchDate")
//	if err != nil {
//	    return err // errs.ValueIsInvalidError
//	}
func ParseDate(raw, paramName string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}

	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q is not a date in %s form", raw, DateLayout),
		)
	}
	return t, nil
}

// FormatDate renders a date in DateLayout; the zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
