package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrRestoreShipmentCommandIsNotConstructed = errors.New(
	"RestoreShipmentCommand must be created via NewRestoreShipmentCommand constructor",
)

// RestoreShipmentCommand represents a request to clear the deleted flag of a
// shipment. A restored shipment becomes visible again through its owning order.
type RestoreShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewRestoreShipmentCommand(shipmentID kernel.ID) (RestoreShipmentCommand, error) {
	if err := shipmentID.Validate("id"); err != nil {
		return RestoreShipmentCommand{}, err
	}

	return RestoreShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RestoreShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRestoreShipmentCommandIsNotConstructed)
}

func (c RestoreShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
