package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
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

type commandUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f commandUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

// UnitOfWorkIntegrationTestSuite runs the unit of work and the coordination commands
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
	commands  commands.UoWFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	// A second run finds the constraints in place.
	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, nil)
	suite.commands = commandUoWFactory{factory: suite.factory}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) draftOrder(number string) order.Order {
	return order.Order{
		Number:       number,
		Date:         kernel.NewDate(2025, time.May, 2),
		CustomerName: "Ana López",
		Total:        decimal.RequireFromString("1234.50"),
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) draftShipment(tracking string) shipment.Shipment {
	return shipment.Shipment{
		Tracking:         tracking,
		Carrier:          shipment.CarrierA,
		Kind:             shipment.Standard,
		Cost:             decimal.RequireFromString("850.00"),
		DispatchDate:     kernel.NewDate(2025, time.May, 10),
		EstimatedArrival: kernel.NewDate(2025, time.May, 15),
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrderWithShipment(number, tracking string) *order.Order {
	draft := suite.draftOrder(number)
	s := suite.draftShipment(tracking)
	draft.Shipment = &s
	cmd, err := commands.NewCreateOrderCommand(draft)
	suite.Require().NoError(err)

	created, err := commands.NewCreateOrderCommandHandler(suite.commands).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return created
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ShipmentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Error(uow.Commit(ctx), "Commit without a transaction should fail")
	suite.Error(uow.Rollback(ctx), "Rollback without a transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.draftOrder("0001")
	o.Status = order.New
	suite.Require().NoError(uow.OrderRepository().Add(ctx, &o))
	suite.Equal(1, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateOrderWithShipment_BothSidesLinked() {
	ctx := context.Background()
	created := suite.createOrderWithShipment("0001", "TRK-0001")

	uow := suite.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(o.Shipment)
	suite.Equal(created.ID, o.Shipment.OrderID)
	suite.Equal("2025-05-10", kernel.FormatDate(o.Shipment.DispatchDate))
	suite.Equal("2025-05-15", kernel.FormatDate(o.Shipment.EstimatedArrival))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSafeDelete_DetachesAndDeletes() {
	ctx := context.Background()
	created := suite.createOrderWithShipment("0001", "TRK-0001")

	cmd, err := commands.NewDeleteShipmentOfOrderCommand(created.ID, created.ShipmentID())
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewDeleteShipmentOfOrderCommandHandler(suite.commands).Handle(ctx, cmd))

	uow := suite.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Nil(o.Shipment)

	s, err := uow.ShipmentRepository().GetIncludingDeleted(ctx, created.ShipmentID())
	suite.Require().NoError(err)
	suite.True(s.Deleted)
	suite.False(s.IsOwned())

	// The tracking code is free again.
	again, err := commands.NewCreateShipmentCommand(suite.draftShipment("TRK-0001"))
	suite.Require().NoError(err)
	_, err = commands.NewCreateShipmentCommandHandler(suite.commands).Handle(ctx, again)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSafeDelete_ForeignShipmentChangesNothing() {
	ctx := context.Background()
	first := suite.createOrderWithShipment("0001", "TRK-0001")
	second := suite.createOrderWithShipment("0002", "TRK-0002")

	cmd, _ := commands.NewDeleteShipmentOfOrderCommand(first.ID, second.ShipmentID())
	err := commands.NewDeleteShipmentOfOrderCommandHandler(suite.commands).Handle(ctx, cmd)
	suite.ErrorIs(err, errs.ErrIntegrityViolation)

	uow := suite.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, first.ID)
	suite.Require().NoError(err)
	suite.Equal(first.ShipmentID(), o.ShipmentID())

	s, err := uow.ShipmentRepository().Get(ctx, second.ShipmentID())
	suite.Require().NoError(err)
	suite.Equal(second.ID, s.OrderID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDirectDeleteAndRestore_RoundTrip() {
	ctx := context.Background()
	created := suite.createOrderWithShipment("0001", "TRK-0001")

	del, _ := commands.NewDeleteShipmentCommand(created.ShipmentID())
	suite.Require().NoError(commands.NewDeleteShipmentCommandHandler(suite.commands, nil).Handle(ctx, del))

	uow := suite.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(o.Shipment)
	suite.True(o.Shipment.Deleted)

	restore, _ := commands.NewRestoreShipmentCommand(created.ShipmentID())
	suite.Require().NoError(commands.NewRestoreShipmentCommandHandler(suite.commands).Handle(ctx, restore))

	o, err = uow.OrderRepository().Get(ctx, created.ID)
	suite.Require().NoError(err)
	suite.False(o.Shipment.Deleted)
	suite.Equal(kernel.NewDate(2025, time.May, 10), kernel.DateOf(o.Shipment.DispatchDate))
	suite.Equal(kernel.NewDate(2025, time.May, 15), kernel.DateOf(o.Shipment.EstimatedArrival))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderNumberReusableAfterDelete() {
	ctx := context.Background()
	created := suite.createOrderWithShipment("0001", "TRK-0001")

	del, _ := commands.NewDeleteOrderCommand(created.ID)
	suite.Require().NoError(commands.NewDeleteOrderCommandHandler(suite.commands).Handle(ctx, del))

	cmd, _ := commands.NewCreateOrderCommand(suite.draftOrder("0001"))
	_, err := commands.NewCreateOrderCommandHandler(suite.commands).Handle(ctx, cmd)
	suite.Require().NoError(err)

	_, err = commands.NewCreateOrderCommandHandler(suite.commands).Handle(ctx, cmd)
	suite.ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateOrder_FailedShipmentLeavesNothing() {
	ctx := context.Background()
	suite.createOrderWithShipment("0001", "TRK-0001")

	draft := suite.draftOrder("0002")
	s := suite.draftShipment("TRK-0001")
	draft.Shipment = &s
	cmd, _ := commands.NewCreateOrderCommand(draft)
	_, err := commands.NewCreateOrderCommandHandler(suite.commands).Handle(ctx, cmd)
	suite.ErrorIs(err, errs.ErrAlreadyExists)

	_, err = suite.factory.Create().OrderRepository().FindByNumber(ctx, "0002")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
