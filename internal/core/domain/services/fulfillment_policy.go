package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Column limits of the persisted form.
const (
	MaxOrderNumberLength  = 20
	MaxCustomerNameLength = 120
	MaxTrackingLength     = 40
)

var (
	maxOrderTotal    = decimal.RequireFromString("9999999999.99")
	maxShipmentCost  = decimal.RequireFromString("99999999.99")
	ErrNilOrder      = errs.NewValueIsRequiredError("order")
	ErrNilShipment   = errs.NewValueIsRequiredError("shipment")
	errTooManyDigits = errors.New("more than 2 decimal places")
)

// FulfillmentPolicy holds the rules that decide whether an order, a shipment, or the
// link between them may be written.
//
// Business rules:
//   - Order number and customer name are required and fit their columns
//   - Order total is not negative; shipment cost is positive; both have at most
//     two decimal places
//   - Enumerations are within their closed sets
//   - Estimated arrival is not before dispatch, dispatch is not before the order date
//   - An order owns at most one shipment and a shipment belongs to at most one order
//
// Example usage:
//
//	policy := services.NewFulfillmentPolicy()
//	if err := policy.ValidateShipment(s); err != nil {
//	    return err // nothing has been written yet
//	}
//	if err := policy.CheckAttach(o, s); err != nil {
//	    return err // errs.IntegrityViolationError or a schedule validation error
//	}
type FulfillmentPolicy struct{}

// NewFulfillmentPolicy creates a new FulfillmentPolicy instance.
func NewFulfillmentPolicy() FulfillmentPolicy {
	return FulfillmentPolicy{}
}

// ValidateOrder checks every field of the order on its own. The shipment reference is
// not inspected; use ValidateShipment and CheckSchedule for it.
//
// All violations are reported together through errors.Join, and each of them matches
// errs.ErrValidation.
func (FulfillmentPolicy) ValidateOrder(o *order.Order) error {
	if o == nil {
		return ErrNilOrder
	}

	return errors.Join(
		requiredText("number", o.Number, MaxOrderNumberLength),
		requiredText("customerName", o.CustomerName, MaxCustomerNameLength),
		requiredDate("date", o.Date),
		amount("total", o.Total, decimal.Zero, true, maxOrderTotal),
		o.Status.Validate(),
	)
}

// ValidateShipment checks every field of the shipment, including that the estimated
// arrival does not precede the dispatch date.
func (FulfillmentPolicy) ValidateShipment(s *shipment.Shipment) error {
	if s == nil {
		return ErrNilShipment
	}

	dispatchErr := requiredDate("dispatchDate", s.DispatchDate)
	arrivalErr := requiredDate("estimatedArrival", s.EstimatedArrival)
	if dispatchErr == nil && arrivalErr == nil && s.EstimatedArrival.Before(s.DispatchDate) {
		arrivalErr = errs.NewValueIsOutOfRangeErrorWithCause(
			"estimatedArrival",
			kernel.FormatDate(s.EstimatedArrival),
			kernel.FormatDate(s.DispatchDate),
			nil,
			errors.New("estimated arrival precedes dispatch date"),
		)
	}

	return errors.Join(
		requiredText("tracking", s.Tracking, MaxTrackingLength),
		s.Carrier.Validate(),
		s.Kind.Validate(),
		amount("cost", s.Cost, decimal.Zero, false, maxShipmentCost),
		dispatchErr,
		arrivalErr,
		s.Status.Validate(),
	)
}

// CheckSchedule rejects a shipment dispatched before the order it belongs to was
// placed.
func (FulfillmentPolicy) CheckSchedule(o *order.Order, s *shipment.Shipment) error {
	if o == nil || s == nil || o.Date.IsZero() || s.DispatchDate.IsZero() {
		return nil
	}
	if s.DispatchDate.Before(o.Date) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"dispatchDate",
			kernel.FormatDate(s.DispatchDate),
			kernel.FormatDate(o.Date),
			nil,
			fmt.Errorf("dispatch precedes order %s date", o.Number),
		)
	}
	return nil
}

// CheckAttach decides whether s may become the shipment of o.
//
// Rules:
//   - o must not already reference a different shipment
//   - s must not be soft-deleted
//   - s must not be owned by an order other than o
//   - the dispatch date must satisfy CheckSchedule
//
// Returns an errs.IntegrityViolationError for ownership conflicts.
func (p FulfillmentPolicy) CheckAttach(o *order.Order, s *shipment.Shipment) error {
	if o == nil {
		return ErrNilOrder
	}
	if s == nil {
		return ErrNilShipment
	}

	if current := o.ShipmentID(); !current.IsZero() && current != s.ID {
		return errs.NewIntegrityViolationError(
			fmt.Sprintf("order %s already has shipment %s", o.Number, current),
		)
	}
	if s.Deleted {
		return errs.NewIntegrityViolationError(fmt.Sprintf("shipment %s is deleted", s.ID))
	}
	if s.IsOwned() && s.OrderID != o.ID {
		return errs.NewIntegrityViolationError(
			fmt.Sprintf("shipment %s belongs to order %s", s.Tracking, s.OrderID),
		)
	}

	return p.CheckSchedule(o, s)
}

// CheckOwnership confirms that o currently references the shipment shipmentID. It is
// the guard of the safe delete: a caller can never remove another order's shipment.
func (FulfillmentPolicy) CheckOwnership(o *order.Order, shipmentID kernel.ID) error {
	if o == nil {
		return ErrNilOrder
	}
	if current := o.ShipmentID(); current != shipmentID {
		if current.IsZero() {
			return errs.NewIntegrityViolationError(
				fmt.Sprintf("order %s has no shipment, not %s", o.ID, shipmentID),
			)
		}
		return errs.NewIntegrityViolationError(
			fmt.Sprintf("shipment %s does not belong to order %s", shipmentID, o.ID),
		)
	}
	return nil
}

func requiredText(param, value string, maxLength int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(trimmed); n > maxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxLength)
	}
	return nil
}

func requiredDate(param string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func amount(param string, value, minValue decimal.Decimal, minInclusive bool, maxValue decimal.Decimal) error {
	tooSmall := value.LessThan(minValue) || (!minInclusive && value.Equal(minValue))
	if tooSmall || value.GreaterThan(maxValue) {
		return errs.NewValueIsOutOfRangeError(param, value.String(), minValue.String(), maxValue.String())
	}
	if !value.Equal(value.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause(param, errTooManyDigits)
	}
	return nil
}
