package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

// CreateShipmentCommandHandler inserts a shipment and, when an owner is given, links
// the owning order to it in the same transaction.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
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
	s := cmd.Shipment()

	if err := ensureTrackingIsFree(ctx, shipmentRepo, s.Tracking, 0); err != nil {
		return nil, err
	}

	var owner *order.Order
	if s.IsOwned() {
		o, err := orderRepo.Get(ctx, s.OrderID)
		if err != nil {
			return nil, err
		}
		if o.HasShipment() {
			return nil, errs.NewIntegrityViolationError(
				fmt.Sprintf("order %s already has shipment %s", o.Number, o.ShipmentID()),
			)
		}
		if err = services.NewFulfillmentPolicy().CheckSchedule(o, s); err != nil {
			return nil, err
		}
		owner = o
	}

	if err := shipmentRepo.Add(ctx, s); err != nil {
		return nil, err
	}

	if owner != nil {
		owner.Shipment = s
		if err := orderRepo.Update(ctx, owner); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
