// Package usecases groups the command and query handlers that driving adapters call.
package usecases

import (
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
)

// Handlers is the full set of orderdesk operations. The CLI and the HTTP server both
// receive one Handlers value from the composition root.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	DeleteShipmentOfOrder commands.DeleteShipmentOfOrderCommandHandler
	CreateShipment        commands.CreateShipmentCommandHandler
	UpdateShipment        commands.UpdateShipmentCommandHandler
	DeleteShipment        commands.DeleteShipmentCommandHandler
	RestoreShipment       commands.RestoreShipmentCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	FindOrderByNumber    queries.FindOrderByNumberQueryHandler
	FindOrdersByCustomer queries.FindOrdersByCustomerQueryHandler
	GetShipment          queries.GetShipmentQueryHandler
	ListShipments        queries.ListShipmentsQueryHandler
	ListOverdueShipments queries.ListOverdueShipmentsQueryHandler
}

// NewHandlers wires every handler over one unit-of-work factory for writes and the
// two readers for queries.
func NewHandlers(
	uowFactory commands.UoWFactory,
	orders queries.OrderReader,
	shipments queries.ShipmentReader,
	logger *slog.Logger,
) Handlers {
	return Handlers{
		CreateOrder:           commands.NewCreateOrderCommandHandler(uowFactory),
		UpdateOrder:           commands.NewUpdateOrderCommandHandler(uowFactory),
		DeleteOrder:           commands.NewDeleteOrderCommandHandler(uowFactory),
		DeleteShipmentOfOrder: commands.NewDeleteShipmentOfOrderCommandHandler(uowFactory),
		CreateShipment:        commands.NewCreateShipmentCommandHandler(uowFactory),
		UpdateShipment:        commands.NewUpdateShipmentCommandHandler(uowFactory),
		DeleteShipment:        commands.NewDeleteShipmentCommandHandler(uowFactory, logger),
		RestoreShipment:       commands.NewRestoreShipmentCommandHandler(uowFactory),

		GetOrder:             queries.NewGetOrderQueryHandler(orders),
		ListOrders:           queries.NewListOrdersQueryHandler(orders),
		FindOrderByNumber:    queries.NewFindOrderByNumberQueryHandler(orders),
		FindOrdersByCustomer: queries.NewFindOrdersByCustomerQueryHandler(orders),
		GetShipment:          queries.NewGetShipmentQueryHandler(shipments),
		ListShipments:        queries.NewListShipmentsQueryHandler(shipments),
		ListOverdueShipments: queries.NewListOverdueShipmentsQueryHandler(shipments),
	}
}
