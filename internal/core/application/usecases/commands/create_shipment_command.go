package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a shipment. A non-zero
// OrderID attaches the new shipment to that order; the order must not have a
// shipment yet.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(shipment.Shipment{
//	    Tracking:         "TRK-0001",
//	    Carrier:          shipment.CarrierA,
//	    Kind:             shipment.Standard,
//	    Cost:             decimal.RequireFromString("850.00"),
//	    DispatchDate:     kernel.NewDate(2025, time.May, 10),
//	    EstimatedArrival: kernel.NewDate(2025, time.May, 15),
//	    OrderID:          orderID,
//	})
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipment shipment.Shipment

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the draft shipment. An unset status becomes
// PREPARING.
func NewCreateShipmentCommand(draft shipment.Shipment) (CreateShipmentCommand, error) {
	draft.ID = 0
	normalizeShipment(&draft)

	var ownerErr error
	if draft.OrderID != 0 {
		ownerErr = draft.OrderID.Validate("orderId")
	}

	if err := errors.Join(
		services.NewFulfillmentPolicy().ValidateShipment(&draft),
		ownerErr,
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		shipment: draft,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Shipment() *shipment.Shipment {
	return c.shipment.Clone()
}

// normalizeShipment trims the draft and defaults an unset status to PREPARING.
func normalizeShipment(s *shipment.Shipment) {
	if s.Status == shipment.UnknownStatus {
		s.Status = shipment.Preparing
	}
	s.Deleted = false
	s.Tracking = strings.TrimSpace(s.Tracking)
	s.DispatchDate = kernel.DateOf(s.DispatchDate)
	s.EstimatedArrival = kernel.DateOf(s.EstimatedArrival)
}
