package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ensureNumberIsFree fails with errs.AlreadyExistsError when an active order other
// than self already uses number.
func ensureNumberIsFree(ctx context.Context, orders ports.OrderRepository, number string, self kernel.ID) error {
	existing, err := orders.FindByNumber(ctx, number)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == self {
		return nil
	}
	return errs.NewAlreadyExistsError("order", "number", number)
}

// ensureTrackingIsFree fails with errs.AlreadyExistsError when an active shipment
// other than self already uses tracking.
func ensureTrackingIsFree(ctx context.Context, shipments ports.ShipmentRepository, tracking string, self kernel.ID) error {
	existing, err := shipments.FindByTracking(ctx, tracking)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == self {
		return nil
	}
	return errs.NewAlreadyExistsError("shipment", "tracking", tracking)
}
