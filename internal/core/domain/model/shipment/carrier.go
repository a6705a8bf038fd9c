package shipment

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Carrier identifies the transport company handling a shipment.
type Carrier int

const (
	// UnknownCarrier represents an invalid or undefined carrier.
	UnknownCarrier Carrier = iota
	CarrierA
	CarrierB
	CarrierC
)

func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		UnknownCarrier: "UNKNOWN",
		CarrierA:       "CARRIER_A",
		CarrierB:       "CARRIER_B",
		CarrierC:       "CARRIER_C",
	}
}

// Carriers lists the valid carriers.
func Carriers() []Carrier {
	return []Carrier{CarrierA, CarrierB, CarrierC}
}

// ParseCarrier converts a carrier name, ignoring case and surrounding blanks.
func ParseCarrier(raw string) (Carrier, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range Carriers() {
		if c.String() == name {
			return c, nil
		}
	}
	return UnknownCarrier, errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%q is not a valid carrier", raw))
}

// Validate rejects UnknownCarrier and values outside the enumeration.
func (c Carrier) Validate() error {
	if c == UnknownCarrier {
		return errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%d is not a valid carrier", c))
	}
	if _, ok := getCarrierStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%d is not a valid carrier", c))
	}
	return nil
}

func (c Carrier) String() string {
	if str, ok := getCarrierStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
