package commands

import (
	"context"
)

// DeleteOrderCommandHandler soft-deletes an order. Deleting an order that is already
// deleted succeeds without writing; an unknown id fails with errs.ObjectNotFoundError.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	o, err := orderRepo.GetIncludingDeleted(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.Deleted {
		return nil
	}

	if err = orderRepo.SoftDelete(ctx, o.ID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
