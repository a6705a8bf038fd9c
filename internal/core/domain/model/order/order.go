package order

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Order is a customer order with an optional shipment.
//
// ID is zero until the store assigns it on insert. Shipment, when set, is the resolved
// shipment record this order references; it may carry Deleted = true when the
// shipment was removed through the direct delete path and not restored.
//
// Example:
//
//	o := &order.Order{
//	    Number:       "0001",
//	    Date:         kernel.NewDate(2025, time.May, 2),
//	    CustomerName: "Ana López",
//	    Total:        decimal.RequireFromString("1234.50"),
//	    Status:       order.New,
//	}
type Order struct {
	ID           kernel.ID
	Deleted      bool
	Number       string
	Date         time.Time
	CustomerName string
	Total        decimal.Decimal
	Status       Status
	Shipment     *shipment.Shipment
}

// Identity returns the order's store-assigned identity.
func (o *Order) Identity() kernel.ID {
	return o.ID
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.Deleted
}

// ShipmentID returns the identity of the referenced shipment, or zero when the order
// has none.
func (o *Order) ShipmentID() kernel.ID {
	if o.Shipment == nil {
		return 0
	}
	return o.Shipment.ID
}

// HasShipment reports whether the order references a shipment.
func (o *Order) HasShipment() bool {
	return o.Shipment != nil
}

// DetachShipment clears the shipment reference in memory. Persisting the order
// afterwards clears it in the store.
func (o *Order) DetachShipment() {
	o.Shipment = nil
}

// Clone returns a deep copy, including the referenced shipment.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Shipment = o.Shipment.Clone()
	return &cp
}
