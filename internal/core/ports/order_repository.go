package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository persists orders. Reads return active orders only unless the method
// name says otherwise, and every returned order has its shipment reference resolved.
// Single-record reads report absence with errs.ObjectNotFoundError; list reads return
// an empty slice.
type OrderRepository interface {
	// Add inserts the order and assigns its ID. The shipment reference, if any, must
	// already be persisted.
	Add(ctx context.Context, o *order.Order) error

	// Update writes every field of an active order, including the shipment reference.
	Update(ctx context.Context, o *order.Order) error

	// SoftDelete flags an active order as deleted.
	SoftDelete(ctx context.Context, id kernel.ID) error

	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	GetIncludingDeleted(ctx context.Context, id kernel.ID) (*order.Order, error)

	List(ctx context.Context) ([]*order.Order, error)

	// FindByNumber matches the number exactly.
	FindByNumber(ctx context.Context, number string) (*order.Order, error)

	// FindByCustomerName matches a case-insensitive substring of the customer name.
	FindByCustomerName(ctx context.Context, fragment string) ([]*order.Order, error)

	// FindByShipment returns the active order referencing the shipment.
	FindByShipment(ctx context.Context, shipmentID kernel.ID) (*order.Order, error)
}
