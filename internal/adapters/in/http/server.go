package http

import (
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP operations by delegating to the use case handlers.
type Server struct {
	handlers usecases.Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server over the use case handlers.
func NewServer(handlers usecases.Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListOrders handles GET /api/v1/orders, optionally filtered by exact number or by
// customer name fragment.
func (s *Server) ListOrders(ctx echo.Context, number, customer *string) error {
	reqCtx := ctx.Request().Context()

	switch {
	case number != nil && customer != nil:
		return s.writeError(ctx, errs.NewValueIsInvalidError("number and customer"))
	case number != nil:
		query, err := queries.NewFindOrderByNumberQuery(*number)
		if err != nil {
			return s.writeError(ctx, err)
		}
		o, err := s.handlers.FindOrderByNumber.Handle(reqCtx, query)
		if err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, []Order{toOrderResponse(o)})
	case customer != nil:
		query, err := queries.NewFindOrdersByCustomerQuery(*customer)
		if err != nil {
			return s.writeError(ctx, err)
		}
		orders, err := s.handlers.FindOrdersByCustomer.Handle(reqCtx, query)
		if err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrdersResponse(orders))
	default:
		orders, err := s.handlers.ListOrders.Handle(reqCtx, queries.NewListOrdersQuery())
		if err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrdersResponse(orders))
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if body.Shipment != nil && body.ShipmentID != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidError("shipment and shipmentId"))
	}

	var draft order.Order
	if err := body.toOrder(&draft); err != nil {
		return s.writeError(ctx, err)
	}

	switch {
	case body.ShipmentID != nil:
		query, err := queries.NewGetShipmentQuery(kernel.ID(*body.ShipmentID), false)
		if err != nil {
			return s.writeError(ctx, err)
		}
		existing, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.writeError(ctx, err)
		}
		draft.Shipment = existing
	case body.Shipment != nil:
		draft.Shipment = &shipment.Shipment{}
		if err := body.Shipment.toShipment(draft.Shipment); err != nil {
			return s.writeError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(draft)
	if err != nil {
		return s.writeError(ctx, err)
	}
	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	o, err := s.getOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/{id}. An omitted status keeps the stored one.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var body OrderFields
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	current, err := s.getOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = body.toOrder(current); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(*current)
	if err != nil {
		return s.writeError(ctx, err)
	}
	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.ID(id))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipmentOfOrder handles DELETE /api/v1/orders/{id}/shipment/{shipmentId}.
func (s *Server) DeleteShipmentOfOrder(ctx echo.Context, id, shipmentID int64) error {
	cmd, err := commands.NewDeleteShipmentOfOrderCommand(kernel.ID(id), kernel.ID(shipmentID))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeleteShipmentOfOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	shipments, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentsResponse(shipments))
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body NewShipment
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var draft shipment.Shipment
	if err := body.toShipment(&draft); err != nil {
		return s.writeError(ctx, err)
	}
	if body.OrderID != nil {
		draft.OrderID = kernel.ID(*body.OrderID)
	}

	cmd, err := commands.NewCreateShipmentCommand(draft)
	if err != nil {
		return s.writeError(ctx, err)
	}
	created, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// ListOverdueShipments handles GET /api/v1/shipments/overdue.
func (s *Server) ListOverdueShipments(ctx echo.Context, asOf *string) error {
	date := kernel.Today()
	if asOf != nil {
		parsed, err := kernel.ParseDate(*asOf, "asOf")
		if err != nil {
			return s.writeError(ctx, err)
		}
		date = parsed
	}

	query, err := queries.NewListOverdueShipmentsQuery(date)
	if err != nil {
		return s.writeError(ctx, err)
	}
	overdue, err := s.handlers.ListOverdueShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOverdueResponse(overdue))
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(ctx echo.Context, id int64, includeDeleted bool) error {
	found, err := s.getShipment(ctx, id, includeDeleted)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentResponse(found))
}

// UpdateShipment handles PUT /api/v1/shipments/{id}. The owning order is kept and an
// omitted status keeps the stored one.
func (s *Server) UpdateShipment(ctx echo.Context, id int64) error {
	var body ShipmentFields
	if err := ctx.Bind(&body); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	current, err := s.getShipment(ctx, id, false)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = body.toShipment(current); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(*current)
	if err != nil {
		return s.writeError(ctx, err)
	}
	updated, err := s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// DeleteShipment handles DELETE /api/v1/shipments/{id}.
func (s *Server) DeleteShipment(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteShipmentCommand(kernel.ID(id))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RestoreShipment handles POST /api/v1/shipments/{id}/restore.
func (s *Server) RestoreShipment(ctx echo.Context, id int64) error {
	cmd, err := commands.NewRestoreShipmentCommand(kernel.ID(id))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.RestoreShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getOrder(ctx echo.Context, id int64) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return nil, err
	}
	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}

func (s *Server) getShipment(ctx echo.Context, id int64, includeDeleted bool) (*shipment.Shipment, error) {
	query, err := queries.NewGetShipmentQuery(kernel.ID(id), includeDeleted)
	if err != nil {
		return nil, err
	}
	return s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
}
