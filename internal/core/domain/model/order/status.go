package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status represents the billing state of an order.
//
//	NEW ──> INVOICED ──> SHIPPED
//
// The sequence is informational; any valid status may be stored.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the status every order is created with.
	New

	// Invoiced indicates the order has been billed.
	Invoiced

	// Shipped indicates the goods have left the warehouse.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		New:      "NEW",
		Invoiced: "INVOICED",
		Shipped:  "SHIPPED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:      "NEW",
		Invoiced: "INVOICED",
		Shipped:  "SHIPPED",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{New, Invoiced, Shipped}
}

// ParseStatus converts the persisted or typed name of a status. Matching ignores case
// and surrounding blanks; anything outside the closed set is a validation error, never
// a default.
//
// Example:
//
//	status, err := order.ParseStatus("invoiced") // order.Invoiced, nil
func ParseStatus(raw string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", raw))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NEW, INVOICED, SHIPPED.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
