package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipments with the same read conventions as
// OrderRepository.
type ShipmentRepository interface {
	// Add inserts the shipment and assigns its ID.
	Add(ctx context.Context, s *shipment.Shipment) error

	// Update writes every field of an active shipment, including the owning order.
	Update(ctx context.Context, s *shipment.Shipment) error

	// SoftDelete flags an active shipment as deleted.
	SoftDelete(ctx context.Context, id kernel.ID) error

	// ClearOwner detaches the shipment from its order whatever its deleted flag.
	ClearOwner(ctx context.Context, id kernel.ID) error

	// Restore clears the deleted flag of a shipment.
	Restore(ctx context.Context, id kernel.ID) error

	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	GetIncludingDeleted(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	List(ctx context.Context) ([]*shipment.Shipment, error)

	// FindByTracking matches the tracking code exactly.
	FindByTracking(ctx context.Context, tracking string) (*shipment.Shipment, error)

	// ListOverdue returns active, undelivered shipments whose estimated arrival is
	// before asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]*shipment.Shipment, error)
}
