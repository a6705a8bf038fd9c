package queries

import (
	"context"
	"time"
)

const day = 24 * time.Hour

type ListOverdueShipmentsQueryHandler struct {
	shipments ShipmentReader
}

func NewListOverdueShipmentsQueryHandler(shipments ShipmentReader) ListOverdueShipmentsQueryHandler {
	return ListOverdueShipmentsQueryHandler{shipments: shipments}
}

// Handle returns overdue shipments in identity order with their delay in days.
func (h ListOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueShipmentsQuery,
) ([]ListOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments, err := h.shipments.ListOverdue(ctx, query.AsOf())
	if err != nil {
		return nil, err
	}

	overdue := make([]ListOverdueShipmentsQueryResponse, 0, len(shipments))
	for _, s := range shipments {
		overdue = append(overdue, ListOverdueShipmentsQueryResponse{
			Shipment: s,
			DaysLate: int(query.AsOf().Sub(s.EstimatedArrival) / day),
		})
	}

	return overdue, nil
}
