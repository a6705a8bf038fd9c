package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

// DeleteShipmentOfOrderCommandHandler performs the safe shipment delete.
//
// Write sequence, all in one transaction:
//  1. clear the shipment reference of the order
//  2. clear the owner of the shipment
//  3. soft-delete the shipment, unless a direct delete already did
//
// Failure modes:
//   - the order is not active: errs.ValueIsInvalidError on "orderId" wrapping the
//     errs.ObjectNotFoundError
//   - the order does not reference the shipment: errs.IntegrityViolationError
//
// Nothing is written when an error is returned.
type DeleteShipmentOfOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteShipmentOfOrderCommandHandler(uowFactory UoWFactory) DeleteShipmentOfOrderCommandHandler {
	return DeleteShipmentOfOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteShipmentOfOrderCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentOfOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	if err != nil {
		return err
	}

	if err = services.NewFulfillmentPolicy().CheckOwnership(o, cmd.ShipmentID()); err != nil {
		return err
	}

	s := o.Shipment
	o.DetachShipment()
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = shipmentRepo.ClearOwner(ctx, s.ID); err != nil {
		return err
	}

	// A shipment deleted directly keeps its flag; only its owner is cleared.
	if !s.Deleted {
		if err = shipmentRepo.SoftDelete(ctx, s.ID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
