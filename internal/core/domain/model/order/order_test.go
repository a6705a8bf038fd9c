package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_ShipmentReference(t *testing.T) {
	o := &order.Order{
		ID:           3,
		Number:       "0003",
		Date:         kernel.NewDate(2025, time.May, 2),
		CustomerName: "Ana López",
		Total:        decimal.RequireFromString("10.00"),
		Status:       order.New,
	}
	assert.False(t, o.HasShipment())
	assert.Equal(t, kernel.ID(0), o.ShipmentID())

	o.Shipment = &shipment.Shipment{ID: 9, Tracking: "TRK-9"}
	assert.True(t, o.HasShipment())
	assert.Equal(t, kernel.ID(9), o.ShipmentID())

	o.DetachShipment()
	assert.False(t, o.HasShipment())
}

func TestOrder_Clone(t *testing.T) {
	original := &order.Order{ID: 1, Number: "0001", Shipment: &shipment.Shipment{ID: 2, Tracking: "A"}}

	cp := original.Clone()
	cp.Number = "0002"
	cp.Shipment.Tracking = "B"

	assert.Equal(t, "0001", original.Number)
	assert.Equal(t, "A", original.Shipment.Tracking)
	assert.Nil(t, (*order.Order)(nil).Clone())
}

func TestOrder_Record(t *testing.T) {
	var record kernel.Record = &order.Order{ID: 5, Deleted: true}

	assert.Equal(t, kernel.ID(5), record.Identity())
	assert.True(t, record.IsDeleted())
}
