package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

type FindOrdersByCustomerQueryHandler struct {
	orders OrderReader
}

func NewFindOrdersByCustomerQueryHandler(orders OrderReader) FindOrdersByCustomerQueryHandler {
	return FindOrdersByCustomerQueryHandler{orders: orders}
}

func (h FindOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersByCustomerQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.FindByCustomerName(ctx, query.Fragment())
}
