package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order, optionally
// together with its shipment.
//
// An embedded shipment without an ID is inserted before the order. An embedded
// shipment with an ID must already exist; it is updated with the given fields and
// linked to the new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Order{
//	    Number:       "0001",
//	    Date:         kernel.NewDate(2025, time.May, 2),
//	    CustomerName: "Ana López",
//	    Total:        decimal.RequireFromString("1234.50"),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s stored with id %s", created.Number, created.ID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	order order.Order

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the draft order and its shipment, if any.
// Text fields are trimmed and an unset status becomes NEW. Returns every validation
// failure joined together; nothing is written when an error is returned.
func NewCreateOrderCommand(draft order.Order) (CreateOrderCommand, error) {
	if draft.Status == order.Unknown {
		draft.Status = order.New
	}
	draft.ID = 0
	draft.Deleted = false
	normalizeOrder(&draft)

	policy := services.NewFulfillmentPolicy()
	if err := policy.ValidateOrder(&draft); err != nil {
		return CreateOrderCommand{}, err
	}

	if draft.Shipment != nil {
		s := draft.Shipment.Clone()
		normalizeShipment(s)
		draft.Shipment = s
		if err := errors.Join(policy.ValidateShipment(s), policy.CheckSchedule(&draft, s)); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		order: draft,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Order returns a copy of the validated draft.
func (c CreateOrderCommand) Order() *order.Order {
	return c.order.Clone()
}

func normalizeOrder(o *order.Order) {
	o.Number = strings.TrimSpace(o.Number)
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.Date = kernel.DateOf(o.Date)
}
