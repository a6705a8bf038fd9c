package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

type FindOrderByNumberQueryHandler struct {
	orders OrderReader
}

func NewFindOrderByNumberQueryHandler(orders OrderReader) FindOrderByNumberQueryHandler {
	return FindOrderByNumberQueryHandler{orders: orders}
}

func (h FindOrderByNumberQueryHandler) Handle(ctx context.Context, query FindOrderByNumberQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.FindByNumber(ctx, query.Number())
}
