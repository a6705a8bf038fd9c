// Package queries contains read-only operations over orders and shipments.
// Query handlers depend on narrow reader interfaces so they can run against any
// store adapter, with or without a surrounding transaction.
package queries

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
)

type (
	// OrderReader is the read side of ports.OrderRepository.
	OrderReader interface {
		Get(ctx context.Context, id kernel.ID) (*order.Order, error)
		List(ctx context.Context) ([]*order.Order, error)
		FindByNumber(ctx context.Context, number string) (*order.Order, error)
		FindByCustomerName(ctx context.Context, fragment string) ([]*order.Order, error)
	}

	// ShipmentReader is the read side of ports.ShipmentRepository.
	ShipmentReader interface {
		Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)
		GetIncludingDeleted(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)
		List(ctx context.Context) ([]*shipment.Shipment, error)
		ListOverdue(ctx context.Context, asOf time.Time) ([]*shipment.Shipment, error)
	}
)
