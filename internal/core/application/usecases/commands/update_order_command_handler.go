package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

// UpdateOrderCommandHandler overwrites an active order.
//
// The stored shipment reference is kept. A command carrying a shipment other than the
// stored one is rejected with errs.IntegrityViolationError, and the order date is
// checked against the dispatch date of the linked active shipment.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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
	o := cmd.Order()

	current, err := orderRepo.Get(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	if err = ensureNumberIsFree(ctx, orderRepo, o.Number, o.ID); err != nil {
		return nil, err
	}

	if o.Shipment != nil && o.Shipment.ID != current.ShipmentID() {
		return nil, errs.NewIntegrityViolationError(
			fmt.Sprintf("order %s shipment reference cannot be changed by an update", o.ID),
		)
	}
	o.Shipment = current.Shipment

	if o.Shipment != nil && !o.Shipment.Deleted {
		if err = services.NewFulfillmentPolicy().CheckSchedule(o, o.Shipment); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
