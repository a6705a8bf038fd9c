package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// ID is the identity the store assigns to an order or a shipment on insert.
//
// The zero value means "not yet persisted". Any operation that targets an existing
// record must reject zero and negative identities before touching the store:
//
//	if err := id.Validate("orderId"); err != nil {
//	    return err // errs.ValueIsInvalidError, matches errs.ErrValidation
//	}
type ID int64

// ParseID converts the textual form of an identity, as typed at the console or sent in
// a request path, into an ID. The result is validated, so ParseID never returns a
// non-positive ID without an error.
//
// Example:
//
//	id, err := kernel.ParseID("42", "shipmentId")
//	if err != nil {
//	    return err
//	}
func ParseID(raw, paramName string) (ID, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a number", raw))
	}

	id := ID(value)
	if err = id.Validate(paramName); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identity can address a stored record.
func (id ID) Validate(paramName string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a positive identity", id))
	}
	return nil
}

// IsZero reports whether the identity has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
