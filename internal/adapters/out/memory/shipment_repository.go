package memory

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

var _ ports.ShipmentRepository = (*ShipmentRepository)(nil)

// ShipmentRepository is an in-memory shipment persistence adapter.
type ShipmentRepository struct {
	session session
}

func (r *ShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return r.session.run(ctx, func(st *state) error {
		if err := checkShipmentRow(st, 0, s); err != nil {
			return err
		}

		st.nextShipmentID++
		s.ID = st.nextShipmentID
		s.Deleted = false
		st.shipments[s.ID] = toShipmentRow(s)
		return nil
	})
}

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return r.session.run(ctx, func(st *state) error {
		current, ok := st.shipments[s.ID]
		if !ok || current.Deleted {
			return errs.NewObjectNotFoundError("shipmentId", s.ID)
		}
		if err := checkShipmentRow(st, s.ID, s); err != nil {
			return err
		}

		row := toShipmentRow(s)
		row.Deleted = false
		st.shipments[s.ID] = row
		return nil
	})
}

func (r *ShipmentRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	return r.session.run(ctx, func(st *state) error {
		row, ok := st.shipments[id]
		if !ok || row.Deleted {
			return errs.NewObjectNotFoundError("shipmentId", id)
		}

		row.Deleted = true
		st.shipments[id] = row
		return nil
	})
}

func (r *ShipmentRepository) ClearOwner(ctx context.Context, id kernel.ID) error {
	return r.session.run(ctx, func(st *state) error {
		row, ok := st.shipments[id]
		if !ok {
			return errs.NewObjectNotFoundError("shipmentId", id)
		}

		row.OrderID = 0
		st.shipments[id] = row
		return nil
	})
}

func (r *ShipmentRepository) Restore(ctx context.Context, id kernel.ID) error {
	return r.session.run(ctx, func(st *state) error {
		row, ok := st.shipments[id]
		if !ok {
			return errs.NewObjectNotFoundError("shipmentId", id)
		}
		if !row.Deleted {
			return nil
		}

		row.Deleted = false
		if err := checkShipmentRow(st, id, &row); err != nil {
			return err
		}
		st.shipments[id] = row
		return nil
	})
}

func (r *ShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.first(ctx, "shipmentId", id, func(s shipment.Shipment) bool {
		return s.ID == id && !s.Deleted
	})
}

func (r *ShipmentRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.first(ctx, "shipmentId", id, func(s shipment.Shipment) bool {
		return s.ID == id
	})
}

func (r *ShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.find(ctx, func(shipment.Shipment) bool { return true })
}

func (r *ShipmentRepository) FindByTracking(ctx context.Context, tracking string) (*shipment.Shipment, error) {
	return r.first(ctx, "tracking", tracking, func(s shipment.Shipment) bool {
		return !s.Deleted && s.Tracking == tracking
	})
}

func (r *ShipmentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*shipment.Shipment, error) {
	return r.find(ctx, func(s shipment.Shipment) bool {
		return s.IsOverdue(asOf)
	})
}

func (r *ShipmentRepository) first(
	ctx context.Context,
	param string,
	key any,
	match func(shipment.Shipment) bool,
) (*shipment.Shipment, error) {
	var found *shipment.Shipment
	err := r.session.run(ctx, func(st *state) error {
		for _, id := range st.sortedShipmentIDs() {
			if s := st.shipments[id]; match(s) {
				found = &s
				return nil
			}
		}
		return errs.NewObjectNotFoundError(param, key)
	})
	return found, err
}

// find returns active shipments that match, ordered by identity.
func (r *ShipmentRepository) find(ctx context.Context, match func(shipment.Shipment) bool) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0)
	err := r.session.run(ctx, func(st *state) error {
		for _, id := range st.sortedShipmentIDs() {
			if s := st.shipments[id]; !s.Deleted && match(s) {
				shipments = append(shipments, &s)
			}
		}
		return nil
	})
	return shipments, err
}

func toShipmentRow(s *shipment.Shipment) shipment.Shipment {
	row := *s
	row.DispatchDate = kernel.DateOf(s.DispatchDate)
	row.EstimatedArrival = kernel.DateOf(s.EstimatedArrival)
	return row
}

// checkShipmentRow enforces what the shipments table constraints enforce in PostgreSQL.
func checkShipmentRow(st *state, self kernel.ID, s *shipment.Shipment) error {
	if s.IsOwned() {
		if _, ok := st.orders[s.OrderID]; !ok {
			return errs.NewIntegrityViolationError(fmt.Sprintf("shipment references a missing order %s", s.OrderID))
		}
	}

	for id, row := range st.shipments {
		if id == self || row.Deleted {
			continue
		}
		if row.Tracking == s.Tracking {
			return errs.NewAlreadyExistsError("shipment", "tracking", s.Tracking)
		}
		if s.IsOwned() && row.OrderID == s.OrderID {
			return errs.NewIntegrityViolationError(fmt.Sprintf("order %s is already linked", s.OrderID))
		}
	}
	return nil
}
