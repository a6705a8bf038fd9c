package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

// CreateOrderCommandHandler stores a new order and, when the order carries one, its
// shipment, inside one transaction.
//
// Write sequence for an order with a new shipment:
//  1. insert the shipment (its identity is assigned)
//  2. insert the order referencing the shipment identity
//  3. record the new order identity as the shipment's owner
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyExists):
//	    // order number or tracking code is taken
//	case err != nil:
//	    return err
//	}
//	fmt.Println(created.ID, created.ShipmentID())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the stored order with its
// identity and the identity of its shipment populated.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()
	o := cmd.Order()

	if err := ensureNumberIsFree(ctx, orderRepo, o.Number, 0); err != nil {
		return nil, err
	}

	s := o.Shipment
	if s != nil {
		if err := ensureTrackingIsFree(ctx, shipmentRepo, s.Tracking, s.ID); err != nil {
			return nil, err
		}

		if s.ID.IsZero() {
			s.OrderID = 0
			if err := shipmentRepo.Add(ctx, s); err != nil {
				return nil, err
			}
		} else {
			stored, err := shipmentRepo.Get(ctx, s.ID)
			if err != nil {
				return nil, err
			}
			if stored.IsOwned() {
				return nil, errs.NewIntegrityViolationError(
					fmt.Sprintf("shipment %s belongs to order %s", s.ID, stored.OrderID),
				)
			}
			s.OrderID = 0
		}
	}

	if err := orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if s != nil {
		if err := services.NewFulfillmentPolicy().CheckAttach(o, s); err != nil {
			return nil, err
		}
		s.OrderID = o.ID
		if err := shipmentRepo.Update(ctx, s); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
