package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// ListOrdersQueryHandler returns active orders. An empty store yields an empty,
// non-nil slice.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.List(ctx)
}
