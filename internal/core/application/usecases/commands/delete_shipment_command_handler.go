package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderdesk/internal/pkg/errs"
)

// DeleteShipmentCommandHandler soft-deletes a shipment without touching its order.
// A warning is logged when an active order still references the shipment.
type DeleteShipmentCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteShipmentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteShipmentCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.GetIncludingDeleted(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if s.Deleted {
		return nil
	}

	owner, err := uow.OrderRepository().FindByShipment(ctx, s.ID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	default:
		h.logger.WarnContext(ctx, "shipment deleted while still referenced",
			"shipment_id", s.ID.Int64(),
			"tracking", s.Tracking,
			"order_id", owner.ID.Int64(),
			"order_number", owner.Number,
		)
	}

	if err = shipmentRepo.SoftDelete(ctx, s.ID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
