package memory

import (
	"context"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository is an in-memory order persistence adapter.
type OrderRepository struct {
	session session
}

func (r *OrderRepository) Add(ctx context.Context, o *order.Order) error {
	return r.session.run(ctx, func(st *state) error {
		if err := checkOrderRow(st, 0, o); err != nil {
			return err
		}

		st.nextOrderID++
		o.ID = st.nextOrderID
		o.Deleted = false
		st.orders[o.ID] = toOrderRow(o)
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.session.run(ctx, func(st *state) error {
		current, ok := st.orders[o.ID]
		if !ok || current.order.Deleted {
			return errs.NewObjectNotFoundError("orderId", o.ID)
		}
		if err := checkOrderRow(st, o.ID, o); err != nil {
			return err
		}

		row := toOrderRow(o)
		row.order.Deleted = false
		st.orders[o.ID] = row
		return nil
	})
}

func (r *OrderRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	return r.session.run(ctx, func(st *state) error {
		row, ok := st.orders[id]
		if !ok || row.order.Deleted {
			return errs.NewObjectNotFoundError("orderId", id)
		}

		row.order.Deleted = true
		st.orders[id] = row
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.first(ctx, "orderId", id, func(row orderRow) bool {
		return row.order.ID == id && !row.order.Deleted
	})
}

func (r *OrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.first(ctx, "orderId", id, func(row orderRow) bool {
		return row.order.ID == id
	})
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(orderRow) bool { return true })
}

func (r *OrderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.first(ctx, "number", number, func(row orderRow) bool {
		return !row.order.Deleted && row.order.Number == number
	})
}

func (r *OrderRepository) FindByCustomerName(ctx context.Context, fragment string) ([]*order.Order, error) {
	needle := strings.ToLower(fragment)
	return r.find(ctx, func(row orderRow) bool {
		return strings.Contains(strings.ToLower(row.order.CustomerName), needle)
	})
}

func (r *OrderRepository) FindByShipment(ctx context.Context, shipmentID kernel.ID) (*order.Order, error) {
	return r.first(ctx, "shipmentId", shipmentID, func(row orderRow) bool {
		return !row.order.Deleted && row.shipmentID == shipmentID
	})
}

func (r *OrderRepository) first(ctx context.Context, param string, key any, match func(orderRow) bool) (*order.Order, error) {
	var found *order.Order
	err := r.session.run(ctx, func(st *state) error {
		for _, id := range st.sortedOrderIDs() {
			if row := st.orders[id]; match(row) {
				found = hydrate(st, row)
				return nil
			}
		}
		return errs.NewObjectNotFoundError(param, key)
	})
	return found, err
}

// find returns active orders that match, ordered by identity.
func (r *OrderRepository) find(ctx context.Context, match func(orderRow) bool) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	err := r.session.run(ctx, func(st *state) error {
		for _, id := range st.sortedOrderIDs() {
			if row := st.orders[id]; !row.order.Deleted && match(row) {
				orders = append(orders, hydrate(st, row))
			}
		}
		return nil
	})
	return orders, err
}

func toOrderRow(o *order.Order) orderRow {
	row := orderRow{order: *o, shipmentID: o.ShipmentID()}
	row.order.Shipment = nil
	row.order.Date = kernel.DateOf(o.Date)
	return row
}

func hydrate(st *state, row orderRow) *order.Order {
	o := row.order
	if !row.shipmentID.IsZero() {
		s := st.shipments[row.shipmentID]
		o.Shipment = &s
	}
	return &o
}

// checkOrderRow enforces what the orders table constraints enforce in PostgreSQL.
func checkOrderRow(st *state, self kernel.ID, o *order.Order) error {
	shipmentID := o.ShipmentID()
	if !shipmentID.IsZero() {
		if _, ok := st.shipments[shipmentID]; !ok {
			return errs.NewIntegrityViolationError(fmt.Sprintf("order references a missing shipment %s", shipmentID))
		}
	}

	for id, row := range st.orders {
		if id == self || row.order.Deleted {
			continue
		}
		if row.order.Number == o.Number {
			return errs.NewAlreadyExistsError("order", "number", o.Number)
		}
		if !shipmentID.IsZero() && row.shipmentID == shipmentID {
			return errs.NewIntegrityViolationError(fmt.Sprintf("shipment %s is already linked", shipmentID))
		}
	}
	return nil
}
