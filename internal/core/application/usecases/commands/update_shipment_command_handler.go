package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

// UpdateShipmentCommandHandler overwrites an active shipment, keeping its owner. The
// dispatch date is checked against the date of the owning order when that order is
// still active.
type UpdateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateShipmentCommandHandler(uowFactory UoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	s := cmd.Shipment()

	current, err := shipmentRepo.Get(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	if err = ensureTrackingIsFree(ctx, shipmentRepo, s.Tracking, s.ID); err != nil {
		return nil, err
	}

	s.OrderID = current.OrderID
	if s.IsOwned() {
		owner, getErr := uow.OrderRepository().Get(ctx, s.OrderID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
		case getErr != nil:
			return nil, getErr
		default:
			if err = services.NewFulfillmentPolicy().CheckSchedule(owner, s); err != nil {
				return nil, err
			}
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
