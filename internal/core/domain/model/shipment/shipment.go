package shipment

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Shipment is the dispatch record of an order.
//
// Example:
//
//	s := &shipment.Shipment{
//	    Tracking:         "TRK-0001",
//	    Carrier:          shipment.CarrierA,
//	    Kind:             shipment.Standard,
//	    Cost:             decimal.RequireFromString("850.00"),
//	    DispatchDate:     kernel.NewDate(2025, time.May, 10),
//	    EstimatedArrival: kernel.NewDate(2025, time.May, 15),
//	    Status:           shipment.Preparing,
//	}
type Shipment struct {
	ID               kernel.ID
	Deleted          bool
	Tracking         string
	Carrier          Carrier
	Kind             Kind
	Cost             decimal.Decimal
	DispatchDate     time.Time
	EstimatedArrival time.Time
	Status           Status

	// OrderID is the identity of the owning order, zero when unowned.
	OrderID kernel.ID
}

// Identity returns the shipment's store-assigned identity.
func (s *Shipment) Identity() kernel.ID {
	return s.ID
}

// IsDeleted reports whether the shipment has been soft-deleted.
func (s *Shipment) IsDeleted() bool {
	return s.Deleted
}

// IsOwned reports whether an order owns the shipment.
func (s *Shipment) IsOwned() bool {
	return !s.OrderID.IsZero()
}

// IsOverdue reports whether the shipment should have arrived before asOf but has not
// been delivered.
func (s *Shipment) IsOverdue(asOf time.Time) bool {
	return s.Status != Delivered && s.EstimatedArrival.Before(kernel.DateOf(asOf))
}

// Clone returns a copy of the shipment.
func (s *Shipment) Clone() *Shipment {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
