package commands

import (
	"context"
)

// RestoreShipmentCommandHandler restores a soft-deleted shipment. Restoring fails
// with errs.AlreadyExistsError when an active shipment took over the tracking code
// in the meantime.
type RestoreShipmentCommandHandler struct {
	uowFactory UoWFactory
}

func NewRestoreShipmentCommandHandler(uowFactory UoWFactory) RestoreShipmentCommandHandler {
	return RestoreShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestoreShipmentCommandHandler) Handle(ctx context.Context, cmd RestoreShipmentCommand) error {
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

	if err := uow.ShipmentRepository().Restore(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
