package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

// serverWrapper binds path and query parameters before calling the Server.
type serverWrapper struct {
	handler *Server
}

func bindPathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *serverWrapper) ListOrders(ctx echo.Context) error {
	var number, customer *string
	if err := runtime.BindQueryParameter("form", true, false, "number", ctx.QueryParams(), &number); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter number: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "customer", ctx.QueryParams(), &customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer: %s", err))
	}
	return w.handler.ListOrders(ctx, number, customer)
}

func (w *serverWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.GetOrder(ctx, id)
}

func (w *serverWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.UpdateOrder(ctx, id)
}

func (w *serverWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.DeleteOrder(ctx, id)
}

func (w *serverWrapper) DeleteShipmentOfOrder(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	shipmentID, err := bindPathID(ctx, "shipmentId")
	if err != nil {
		return err
	}
	return w.handler.DeleteShipmentOfOrder(ctx, id, shipmentID)
}

func (w *serverWrapper) ListOverdueShipments(ctx echo.Context) error {
	var asOf *string
	if err := runtime.BindQueryParameter("form", true, false, "asOf", ctx.QueryParams(), &asOf); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter asOf: %s", err))
	}
	return w.handler.ListOverdueShipments(ctx, asOf)
}

func (w *serverWrapper) GetShipment(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	var includeDeleted *bool
	if err = runtime.BindQueryParameter("form", true, false, "includeDeleted", ctx.QueryParams(), &includeDeleted); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter includeDeleted: %s", err))
	}
	return w.handler.GetShipment(ctx, id, includeDeleted != nil && *includeDeleted)
}

func (w *serverWrapper) UpdateShipment(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.UpdateShipment(ctx, id)
}

func (w *serverWrapper) DeleteShipment(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.DeleteShipment(ctx, id)
}

func (w *serverWrapper) RestoreShipment(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.RestoreShipment(ctx, id)
}

// RegisterHandlers adds every API route of the Server to router.
func RegisterHandlers(router *echo.Echo, s *Server) {
	w := &serverWrapper{handler: s}

	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/orders", w.ListOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", w.GetOrder)
	v1.PUT("/orders/:id", w.UpdateOrder)
	v1.DELETE("/orders/:id", w.DeleteOrder)
	v1.DELETE("/orders/:id/shipment/:shipmentId", w.DeleteShipmentOfOrder)

	v1.GET("/shipments", s.ListShipments)
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/overdue", w.ListOverdueShipments)
	v1.GET("/shipments/:id", w.GetShipment)
	v1.PUT("/shipments/:id", w.UpdateShipment)
	v1.DELETE("/shipments/:id", w.DeleteShipment)
	v1.POST("/shipments/:id/restore", w.RestoreShipment)
}

// NewEcho assembles the echo instance: request ids, request logging, validation
// against doc, the API routes and the documentation UI at /swagger/.
func NewEcho(s *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(requestValidator(doc))

	RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// Serve runs e on address until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, e *echo.Echo, address string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
