// Package memory provides in-process implementations of the order and shipment
// repositories and of the unit of work. It follows the same contracts as the
// PostgreSQL adapter, including active-only uniqueness, foreign keys between the two
// tables and all-or-nothing transactions, and backs both the tests and the memory
// store mode.
package memory

import (
	"context"
	"errors"
	"sort"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/ports"
)

var errNoTransaction = errors.New("no active transaction")

type orderRow struct {
	order      order.Order
	shipmentID kernel.ID
}

type state struct {
	orders         map[kernel.ID]orderRow
	shipments      map[kernel.ID]shipment.Shipment
	nextOrderID    kernel.ID
	nextShipmentID kernel.ID
}

func newState() state {
	return state{
		orders:    make(map[kernel.ID]orderRow),
		shipments: make(map[kernel.ID]shipment.Shipment),
	}
}

func (s state) clone() state {
	cp := state{
		orders:         make(map[kernel.ID]orderRow, len(s.orders)),
		shipments:      make(map[kernel.ID]shipment.Shipment, len(s.shipments)),
		nextOrderID:    s.nextOrderID,
		nextShipmentID: s.nextShipmentID,
	}
	for id, row := range s.orders {
		cp.orders[id] = row
	}
	for id, sh := range s.shipments {
		cp.shipments[id] = sh
	}
	return cp
}

func (s *state) sortedOrderIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *state) sortedShipmentIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(s.shipments))
	for id := range s.shipments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Store holds the tables. A transaction holds the store exclusively from Begin to
// Commit or Rollback; calls outside a transaction hold it for one call.
type Store struct {
	sem   chan struct{}
	state state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		sem:   make(chan struct{}, 1),
		state: newState(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// session runs repository calls either inside the transaction that already holds the
// store or by holding it for the duration of the call.
type session struct {
	store *Store
	inTx  bool
}

func (s session) run(ctx context.Context, fn func(st *state) error) error {
	if !s.inTx {
		if err := s.store.acquire(ctx); err != nil {
			return err
		}
		defer s.store.release()
	}
	return fn(&s.store.state)
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork snapshots the store on Begin and restores the snapshot on Rollback.
type UnitOfWork struct {
	store    *Store
	snapshot *state
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return nil
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}

	snapshot := u.store.state.clone()
	u.snapshot = &snapshot
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.snapshot == nil {
		return errNoTransaction
	}

	u.snapshot = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.snapshot == nil {
		return errNoTransaction
	}

	u.store.state = *u.snapshot
	u.snapshot = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{session: u.session()}
}

func (u *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &ShipmentRepository{session: u.session()}
}

func (u *UnitOfWork) session() session {
	return session{store: u.store, inTx: u.snapshot != nil}
}

// NewOrderRepository returns a repository that runs each call on its own.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{session: session{store: store}}
}

// NewShipmentRepository returns a repository that runs each call on its own.
func NewShipmentRepository(store *Store) *ShipmentRepository {
	return &ShipmentRepository{session: session{store: store}}
}
