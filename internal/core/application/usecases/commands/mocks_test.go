package commands_test

import (
	"context"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) FindByCustomerName(ctx context.Context, fragment string) ([]*order.Order, error) {
	args := m.Called(ctx, fragment)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) FindByShipment(ctx context.Context, shipmentID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, shipmentID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipmentRepository) ClearOwner(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipmentRepository) Restore(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) FindByTracking(ctx context.Context, tracking string) (*shipment.Shipment, error) {
	args := m.Called(ctx, tracking)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, asOf)
	s, _ := args.Get(0).([]*shipment.Shipment)
	return s, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

// newMemoryStore returns a fresh in-memory store together with a command factory
// over it.
func newMemoryStore() (*memory.Store, commands.UoWFactory) {
	store := memory.NewStore()
	return store, memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
}

func draftOrder(number string) order.Order {
	return order.Order{
		Number:       number,
		Date:         kernel.NewDate(2025, time.May, 2),
		CustomerName: "Ana López",
		Total:        decimal.RequireFromString("1234.50"),
	}
}

func draftShipment(tracking string) shipment.Shipment {
	return shipment.Shipment{
		Tracking:         tracking,
		Carrier:          shipment.CarrierA,
		Kind:             shipment.Standard,
		Cost:             decimal.RequireFromString("850.00"),
		DispatchDate:     kernel.NewDate(2025, time.May, 10),
		EstimatedArrival: kernel.NewDate(2025, time.May, 15),
	}
}
