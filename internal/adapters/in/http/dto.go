package http

import (
	"errors"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// OrderFields is the writable part of an order.
type OrderFields struct {
	Number       string          `json:"number"`
	Date         string          `json:"date"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status,omitempty"`
}

// NewOrder carries either a new shipment or the id of an existing unowned one.
type NewOrder struct {
	OrderFields

	Shipment   *ShipmentFields `json:"shipment,omitempty"`
	ShipmentID *int64          `json:"shipmentId,omitempty"`
}

// ShipmentFields is the writable part of a shipment.
type ShipmentFields struct {
	Tracking         string          `json:"tracking"`
	Carrier          string          `json:"carrier"`
	Type             string          `json:"type"`
	Cost             decimal.Decimal `json:"cost"`
	DispatchDate     string          `json:"dispatchDate"`
	EstimatedArrival string          `json:"estimatedArrival"`
	Status           string          `json:"status,omitempty"`
}

type NewShipment struct {
	ShipmentFields

	OrderID *int64 `json:"orderId,omitempty"`
}

type Shipment struct {
	ID               int64  `json:"id"`
	Tracking         string `json:"tracking"`
	Carrier          string `json:"carrier"`
	Type             string `json:"type"`
	Cost             string `json:"cost"`
	DispatchDate     string `json:"dispatchDate"`
	EstimatedArrival string `json:"estimatedArrival"`
	Status           string `json:"status"`
	OrderID          *int64 `json:"orderId,omitempty"`
	Deleted          bool   `json:"deleted"`
	DaysLate         *int   `json:"daysLate,omitempty"`
}

type Order struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	Date         string    `json:"date"`
	CustomerName string    `json:"customerName"`
	Total        string    `json:"total"`
	Status       string    `json:"status"`
	Shipment     *Shipment `json:"shipment,omitempty"`
}

// Error is the body of every failed request.
type Error struct {
	Code     int    `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// toOrder copies the fields onto o and reports every malformed one.
func (f OrderFields) toOrder(o *order.Order) error {
	date, dateErr := kernel.ParseDate(f.Date, "date")

	var statusErr error
	status := order.Unknown
	if f.Status != "" {
		status, statusErr = order.ParseStatus(f.Status)
	}

	o.Number = f.Number
	o.Date = date
	o.CustomerName = f.CustomerName
	o.Total = f.Total
	if status != order.Unknown || o.Status == order.Unknown {
		o.Status = status
	}
	return errors.Join(dateErr, statusErr)
}

// toShipment copies the fields onto s and reports every malformed one.
func (f ShipmentFields) toShipment(s *shipment.Shipment) error {
	carrier, carrierErr := shipment.ParseCarrier(f.Carrier)
	kind, kindErr := shipment.ParseKind(f.Type)
	dispatch, dispatchErr := kernel.ParseDate(f.DispatchDate, "dispatchDate")
	arrival, arrivalErr := kernel.ParseDate(f.EstimatedArrival, "estimatedArrival")

	var statusErr error
	status := shipment.UnknownStatus
	if f.Status != "" {
		status, statusErr = shipment.ParseStatus(f.Status)
	}

	s.Tracking = f.Tracking
	s.Carrier = carrier
	s.Kind = kind
	s.Cost = f.Cost
	s.DispatchDate = dispatch
	s.EstimatedArrival = arrival
	if status != shipment.UnknownStatus || s.Status == shipment.UnknownStatus {
		s.Status = status
	}
	return errors.Join(carrierErr, kindErr, dispatchErr, arrivalErr, statusErr)
}

func toShipmentResponse(s *shipment.Shipment) *Shipment {
	if s == nil {
		return nil
	}
	response := &Shipment{
		ID:               s.ID.Int64(),
		Tracking:         s.Tracking,
		Carrier:          s.Carrier.String(),
		Type:             s.Kind.String(),
		Cost:             s.Cost.StringFixed(2),
		DispatchDate:     kernel.FormatDate(s.DispatchDate),
		EstimatedArrival: kernel.FormatDate(s.EstimatedArrival),
		Status:           s.Status.String(),
		Deleted:          s.Deleted,
	}
	if s.IsOwned() {
		owner := s.OrderID.Int64()
		response.OrderID = &owner
	}
	return response
}

func toOrderResponse(o *order.Order) Order {
	return Order{
		ID:           o.ID.Int64(),
		Number:       o.Number,
		Date:         kernel.FormatDate(o.Date),
		CustomerName: o.CustomerName,
		Total:        o.Total.StringFixed(2),
		Status:       o.Status.String(),
		Shipment:     toShipmentResponse(o.Shipment),
	}
}

func toOrdersResponse(orders []*order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return response
}

func toShipmentsResponse(shipments []*shipment.Shipment) []*Shipment {
	response := make([]*Shipment, len(shipments))
	for i, s := range shipments {
		response[i] = toShipmentResponse(s)
	}
	return response
}

func toOverdueResponse(overdue []queries.ListOverdueShipmentsQueryResponse) []*Shipment {
	response := make([]*Shipment, len(overdue))
	for i, item := range overdue {
		days := item.DaysLate
		response[i] = toShipmentResponse(item.Shipment)
		response[i].DaysLate = &days
	}
	return response
}
