package shipment

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Kind is the service level of a shipment, persisted as the shipment type.
type Kind int

const (
	// UnknownKind represents an invalid or undefined shipment type.
	UnknownKind Kind = iota
	Standard
	Express
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "UNKNOWN",
		Standard:    "STANDARD",
		Express:     "EXPRESS",
	}
}

// Kinds lists the valid shipment types.
func Kinds() []Kind {
	return []Kind{Standard, Express}
}

// ParseKind converts a shipment type name, ignoring case and surrounding blanks.
func ParseKind(raw string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid shipment type", raw))
}

// Validate rejects UnknownKind and values outside the enumeration.
func (k Kind) Validate() error {
	if k != Standard && k != Express {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid shipment type", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
