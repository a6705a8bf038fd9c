package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    ports.OrderRepository
	shipments ports.ShipmentRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	uow := postgres_adapter.NewGormUnitOfWorkFactory(db, nil).Create()
	suite.orders = uow.OrderRepository()
	suite.shipments = uow.ShipmentRepository()
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryTestSuite) newOrder(number, customer string) *order.Order {
	return &order.Order{
		Number:       number,
		Date:         kernel.NewDate(2025, time.May, 2),
		CustomerName: customer,
		Total:        decimal.RequireFromString("1234.50"),
		Status:       order.New,
	}
}

func (suite *OrderRepositoryTestSuite) newShipment(tracking string) *shipment.Shipment {
	return &shipment.Shipment{
		Tracking:         tracking,
		Carrier:          shipment.CarrierA,
		Kind:             shipment.Standard,
		Cost:             decimal.RequireFromString("850.00"),
		DispatchDate:     kernel.NewDate(2025, time.May, 10),
		EstimatedArrival: kernel.NewDate(2025, time.May, 15),
		Status:           shipment.Preparing,
	}
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newOrder("0001", "Ana López")

	suite.Require().NoError(suite.orders.Add(ctx, o))
	suite.False(o.ID.IsZero())

	got, err := suite.orders.Get(ctx, o.ID)
	suite.Require().NoError(err)
	suite.Equal("0001", got.Number)
	suite.Equal("Ana López", got.CustomerName)
	suite.True(got.Total.Equal(decimal.RequireFromString("1234.5")))
	suite.Equal(kernel.NewDate(2025, time.May, 2), kernel.DateOf(got.Date))
	suite.Equal(order.New, got.Status)
	suite.Nil(got.Shipment)
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.orders.Get(context.Background(), 404)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateNumber() {
	ctx := context.Background()
	suite.Require().NoError(suite.orders.Add(ctx, suite.newOrder("0001", "Ana")))

	err := suite.orders.Add(ctx, suite.newOrder("0001", "Luis"))
	suite.ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *OrderRepositoryTestSuite) TestSoftDelete_FreesNumber() {
	ctx := context.Background()
	first := suite.newOrder("0001", "Ana")
	suite.Require().NoError(suite.orders.Add(ctx, first))
	suite.Require().NoError(suite.orders.SoftDelete(ctx, first.ID))

	_, err := suite.orders.Get(ctx, first.ID)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	deleted, err := suite.orders.GetIncludingDeleted(ctx, first.ID)
	suite.Require().NoError(err)
	suite.True(deleted.Deleted)

	second := suite.newOrder("0001", "Luis")
	suite.Require().NoError(suite.orders.Add(ctx, second))
	suite.NotEqual(first.ID, second.ID)

	err = suite.orders.SoftDelete(ctx, first.ID)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_WritesShipmentReference() {
	ctx := context.Background()
	s := suite.newShipment("TRK-0001")
	suite.Require().NoError(suite.shipments.Add(ctx, s))

	o := suite.newOrder("0001", "Ana")
	o.Shipment = s
	suite.Require().NoError(suite.orders.Add(ctx, o))

	got, err := suite.orders.Get(ctx, o.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Shipment)
	suite.Equal("TRK-0001", got.Shipment.Tracking)

	got.DetachShipment()
	got.Status = order.Invoiced
	suite.Require().NoError(suite.orders.Update(ctx, got))

	reloaded, err := suite.orders.Get(ctx, o.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.Shipment)
	suite.Equal(order.Invoiced, reloaded.Status)
}

func (suite *OrderRepositoryTestSuite) TestAdd_ShipmentLinkedTwice() {
	ctx := context.Background()
	s := suite.newShipment("TRK-0001")
	suite.Require().NoError(suite.shipments.Add(ctx, s))

	first := suite.newOrder("0001", "Ana")
	first.Shipment = s
	suite.Require().NoError(suite.orders.Add(ctx, first))

	second := suite.newOrder("0002", "Luis")
	second.Shipment = s
	err := suite.orders.Add(ctx, second)
	suite.ErrorIs(err, errs.ErrIntegrityViolation)
}

func (suite *OrderRepositoryTestSuite) TestAdd_MissingShipment() {
	o := suite.newOrder("0001", "Ana")
	o.Shipment = &shipment.Shipment{ID: 999}
	err := suite.orders.Add(context.Background(), o)
	suite.ErrorIs(err, errs.ErrIntegrityViolation)
}

func (suite *OrderRepositoryTestSuite) TestGet_HydratesDeletedShipment() {
	ctx := context.Background()
	s := suite.newShipment("TRK-0001")
	suite.Require().NoError(suite.shipments.Add(ctx, s))
	o := suite.newOrder("0001", "Ana")
	o.Shipment = s
	suite.Require().NoError(suite.orders.Add(ctx, o))

	suite.Require().NoError(suite.shipments.SoftDelete(ctx, s.ID))

	got, err := suite.orders.Get(ctx, o.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Shipment)
	suite.True(got.Shipment.Deleted)
}

func (suite *OrderRepositoryTestSuite) TestFindByCustomerName() {
	ctx := context.Background()
	suite.Require().NoError(suite.orders.Add(ctx, suite.newOrder("0001", "Ana López")))
	suite.Require().NoError(suite.orders.Add(ctx, suite.newOrder("0002", "LUIS LÓPEZ")))
	suite.Require().NoError(suite.orders.Add(ctx, suite.newOrder("0003", "100% Cotton Ltd")))

	found, err := suite.orders.FindByCustomerName(ctx, "lópez")
	suite.Require().NoError(err)
	suite.Len(found, 2)

	found, err = suite.orders.FindByCustomerName(ctx, "0%")
	suite.Require().NoError(err)
	suite.Len(found, 1)

	found, err = suite.orders.FindByCustomerName(ctx, "nobody")
	suite.Require().NoError(err)
	suite.NotNil(found)
	suite.Empty(found)
}

func (suite *OrderRepositoryTestSuite) TestFindByNumberAndShipment() {
	ctx := context.Background()
	s := suite.newShipment("TRK-0001")
	suite.Require().NoError(suite.shipments.Add(ctx, s))
	o := suite.newOrder("0001", "Ana")
	o.Shipment = s
	suite.Require().NoError(suite.orders.Add(ctx, o))

	byNumber, err := suite.orders.FindByNumber(ctx, "0001")
	suite.Require().NoError(err)
	suite.Equal(o.ID, byNumber.ID)

	byShipment, err := suite.orders.FindByShipment(ctx, s.ID)
	suite.Require().NoError(err)
	suite.Equal(o.ID, byShipment.ID)

	_, err = suite.orders.FindByNumber(ctx, "0002")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestList_ActiveOnlyInIdentityOrder() {
	ctx := context.Background()
	for _, number := range []string{"0003", "0001", "0002"} {
		suite.Require().NoError(suite.orders.Add(ctx, suite.newOrder(number, "Ana")))
	}
	all, err := suite.orders.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Require().NoError(suite.orders.SoftDelete(ctx, all[1].ID))

	active, err := suite.orders.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal("0003", active[0].Number)
	suite.Equal("0002", active[1].Number)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
