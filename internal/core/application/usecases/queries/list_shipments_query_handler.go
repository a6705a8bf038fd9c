package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/shipment"
)

type ListShipmentsQueryHandler struct {
	shipments ShipmentReader
}

func NewListShipmentsQueryHandler(shipments ShipmentReader) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{shipments: shipments}
}

func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.shipments.List(ctx)
}
