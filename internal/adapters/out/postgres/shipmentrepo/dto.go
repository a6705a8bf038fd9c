// Package shipmentrepo provides data transfer objects and the GORM repository for
// shipments. Soft-deleted rows stay in the table with deleted = true; the partial
// unique indexes only cover active rows.
package shipmentrepo

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure of a shipment. OrderID is the
// foreign key to the owning order and is NULL for unowned shipments.
type ShipmentDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	Deleted          bool            `gorm:"not null;default:false;index"`
	Tracking         string          `gorm:"size:40;not null;uniqueIndex:ux_shipments_tracking_active,where:deleted = false"`
	Carrier          string          `gorm:"size:16;not null"`
	Kind             string          `gorm:"column:shipment_type;size:16;not null"`
	Cost             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DispatchDate     time.Time       `gorm:"type:date;not null"`
	EstimatedArrival time.Time       `gorm:"type:date;not null;index"`
	Status           string          `gorm:"size:16;not null"`
	OrderID          *int64          `gorm:"uniqueIndex:ux_shipments_order_active,where:deleted = false"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var orderID *int64
	if s.IsOwned() {
		raw := s.OrderID.Int64()
		orderID = &raw
	}

	return ShipmentDTO{
		ID:               s.ID.Int64(),
		Deleted:          s.Deleted,
		Tracking:         s.Tracking,
		Carrier:          s.Carrier.String(),
		Kind:             s.Kind.String(),
		Cost:             s.Cost,
		DispatchDate:     kernel.DateOf(s.DispatchDate),
		EstimatedArrival: kernel.DateOf(s.EstimatedArrival),
		Status:           s.Status.String(),
		OrderID:          orderID,
	}
}

// ToDomain converts a stored row into a Shipment. Enumeration names that are not part
// of the closed sets are reported as errors rather than mapped to a default.
func ToDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	carrier, carrierErr := shipment.ParseCarrier(dto.Carrier)
	kind, kindErr := shipment.ParseKind(dto.Kind)
	status, statusErr := shipment.ParseStatus(dto.Status)
	if err := errors.Join(carrierErr, kindErr, statusErr); err != nil {
		return nil, err
	}

	var orderID kernel.ID
	if dto.OrderID != nil {
		orderID = kernel.ID(*dto.OrderID)
	}

	return &shipment.Shipment{
		ID:               kernel.ID(dto.ID),
		Deleted:          dto.Deleted,
		Tracking:         dto.Tracking,
		Carrier:          carrier,
		Kind:             kind,
		Cost:             dto.Cost,
		DispatchDate:     kernel.DateOf(dto.DispatchDate),
		EstimatedArrival: kernel.DateOf(dto.EstimatedArrival),
		Status:           status,
		OrderID:          orderID,
	}, nil
}
