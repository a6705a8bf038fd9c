package shipment

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status represents where a shipment is in transit.
//
//	PREPARING ──> IN_TRANSIT ──> DELIVERED
//
// The arrow describes intended use only. Updates may store any valid status.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Preparing is the status of a shipment that has not left yet.
	Preparing

	// InTransit indicates the carrier has the parcel.
	InTransit

	// Delivered is the final status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Preparing:     "PREPARING",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
	}
}

// Statuses lists the valid statuses in intended order.
func Statuses() []Status {
	return []Status{Preparing, InTransit, Delivered}
}

// ParseStatus converts a shipment status name, ignoring case and surrounding blanks.
//
// Example:
//
//	status, err := shipment.ParseStatus("in_transit") // shipment.InTransit, nil
func ParseStatus(raw string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, s := range Statuses() {
		if s.String() == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"shipmentStatus",
		fmt.Errorf("%q is not a valid shipment status", raw),
	)
}

// Validate rejects UnknownStatus and values outside the enumeration.
func (s Status) Validate() error {
	switch s {
	case Preparing, InTransit, Delivered:
		return nil
	case UnknownStatus:
	}
	return errs.NewValueIsInvalidErrorWithCause("shipmentStatus", fmt.Errorf("%d is not a valid shipment status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
