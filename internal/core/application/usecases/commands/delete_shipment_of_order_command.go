package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteShipmentOfOrderCommandIsNotConstructed = errors.New(
	"DeleteShipmentOfOrderCommand must be created via NewDeleteShipmentOfOrderCommand constructor",
)

// DeleteShipmentOfOrderCommand represents the safe removal of a shipment: the
// shipment is detached from its order and soft-deleted in one step.
//
// Example:
//
//	cmd, err := NewDeleteShipmentOfOrderCommand(orderID, shipmentID)
//	if err != nil {
//	    return err
//	}
//	err = NewDeleteShipmentOfOrderCommandHandler(uowFactory).Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrIntegrityViolation) {
//	    // the shipment does not belong to the order
//	}
type DeleteShipmentOfOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteShipmentOfOrderCommand(orderID, shipmentID kernel.ID) (DeleteShipmentOfOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate("orderId"),
		shipmentID.Validate("shipmentId"),
	); err != nil {
		return DeleteShipmentOfOrderCommand{}, err
	}

	return DeleteShipmentOfOrderCommand{
		orderID:    orderID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentOfOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentOfOrderCommandIsNotConstructed)
}

func (c DeleteShipmentOfOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c DeleteShipmentOfOrderCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
