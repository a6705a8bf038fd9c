package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to overwrite the fields of an active
// shipment. The owning order is never changed through this command.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipment shipment.Shipment

	guard guard.ConstructorGuard
}

func NewUpdateShipmentCommand(s shipment.Shipment) (UpdateShipmentCommand, error) {
	normalizeShipment(&s)

	if err := errors.Join(
		s.ID.Validate("id"),
		services.NewFulfillmentPolicy().ValidateShipment(&s),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return UpdateShipmentCommand{
		shipment: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) Shipment() *shipment.Shipment {
	return c.shipment.Clone()
}
