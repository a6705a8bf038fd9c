// Package orderrepo provides data transfer objects and the GORM repository for
// orders. The shipment reference is stored as the shipment_id foreign key and
// resolved into a Shipment object when orders are read.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Deleted      bool            `gorm:"not null;default:false;index"`
	Number       string          `gorm:"size:20;not null;uniqueIndex:ux_orders_number_active,where:deleted = false"`
	OrderDate    time.Time       `gorm:"type:date;not null"`
	CustomerName string          `gorm:"size:120;not null"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"size:16;not null"`
	ShipmentID   *int64          `gorm:"uniqueIndex:ux_orders_shipment_active,where:deleted = false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order into its row. Only the identity of the referenced
// shipment is kept.
func fromDomain(o *order.Order) OrderDTO {
	var shipmentID *int64
	if o.HasShipment() {
		raw := o.ShipmentID().Int64()
		shipmentID = &raw
	}

	return OrderDTO{
		ID:           o.ID.Int64(),
		Deleted:      o.Deleted,
		Number:       o.Number,
		OrderDate:    kernel.DateOf(o.Date),
		CustomerName: o.CustomerName,
		Total:        o.Total,
		Status:       o.Status.String(),
		ShipmentID:   shipmentID,
	}
}

// toDomain converts a row into an Order, resolving the shipment reference from the
// preloaded shipments. A reference that cannot be resolved is reported as a store
// failure.
func toDomain(dto OrderDTO, shipments map[int64]*shipment.Shipment) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		ID:           kernel.ID(dto.ID),
		Deleted:      dto.Deleted,
		Number:       dto.Number,
		Date:         kernel.DateOf(dto.OrderDate),
		CustomerName: dto.CustomerName,
		Total:        dto.Total,
		Status:       status,
	}

	if dto.ShipmentID != nil {
		s, ok := shipments[*dto.ShipmentID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("shipmentId", kernel.ID(*dto.ShipmentID))
		}
		o.Shipment = s
	}

	return o, nil
}
