package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/shipment"
)

type GetShipmentQueryHandler struct {
	shipments ShipmentReader
}

func NewGetShipmentQueryHandler(shipments ShipmentReader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{shipments: shipments}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.IncludeDeleted() {
		return h.shipments.GetIncludingDeleted(ctx, query.ShipmentID())
	}
	return h.shipments.Get(ctx, query.ShipmentID())
}
