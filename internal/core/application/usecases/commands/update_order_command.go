package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to overwrite the fields of an active order.
// The shipment reference is never changed through this command; use the shipment
// commands to create or remove the shipment of an order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	order order.Order

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(o order.Order) (UpdateOrderCommand, error) {
	normalizeOrder(&o)
	o.Deleted = false

	if err := errors.Join(
		o.ID.Validate("id"),
		services.NewFulfillmentPolicy().ValidateOrder(&o),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	o.Shipment = o.Shipment.Clone()

	return UpdateOrderCommand{
		order: o,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Order() *order.Order {
	return c.order.Clone()
}
