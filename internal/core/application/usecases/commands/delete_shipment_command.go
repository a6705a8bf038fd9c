package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents the direct delete of a shipment. Unlike
// DeleteShipmentOfOrderCommand it leaves the order reference in place, so the owning
// order keeps pointing at a deleted shipment until the shipment is restored.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(shipmentID kernel.ID) (DeleteShipmentCommand, error) {
	if err := shipmentID.Validate("id"); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
