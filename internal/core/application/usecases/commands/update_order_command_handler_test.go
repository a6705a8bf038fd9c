package commands_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_RequiresID(t *testing.T) {
	draft := draftOrder("0001")
	draft.Status = order.New
	_, err := commands.NewUpdateOrderCommand(draft)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderCommandHandler_Handle_KeepsShipmentReference(t *testing.T) {
	ctx := context.Background()
	store, factory := newMemoryStore()
	created := createOrderWithShipment(t, factory, "0001", "TRK-0001")

	changed := *created
	changed.CustomerName = "Ana María López"
	changed.Status = order.Invoiced
	changed.Shipment = nil
	cmd, err := commands.NewUpdateOrderCommand(changed)
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, created.ShipmentID(), updated.ShipmentID())

	reloaded, err := memory.NewOrderRepository(store).Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María López", reloaded.CustomerName)
	assert.Equal(t, order.Invoiced, reloaded.Status)
	assert.Equal(t, created.ShipmentID(), reloaded.ShipmentID())
}

func TestUpdateOrderCommandHandler_Handle_RejectsShipmentSwap(t *testing.T) {
	ctx := context.Background()
	_, factory := newMemoryStore()
	created := createOrderWithShipment(t, factory, "0001", "TRK-0001")

	changed := *created
	changed.Shipment = &shipment.Shipment{ID: created.ShipmentID() + 100}
	cmd, _ := commands.NewUpdateOrderCommand(changed)

	_, err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIntegrityViolation)
}

func TestUpdateOrderCommandHandler_Handle_DateAfterDispatch(t *testing.T) {
	ctx := context.Background()
	_, factory := newMemoryStore()
	created := createOrderWithShipment(t, factory, "0001", "TRK-0001")

	changed := *created
	changed.Date = kernel.NewDate(2025, time.May, 12)
	cmd, _ := commands.NewUpdateOrderCommand(changed)

	_, err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdateOrderCommandHandler_Handle_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	_, factory := newMemoryStore()
	createOrderWithShipment(t, factory, "0001", "TRK-0001")
	second := createOrderWithShipment(t, factory, "0002", "TRK-0002")

	changed := *second
	changed.Number = "0001"
	cmd, _ := commands.NewUpdateOrderCommand(changed)

	_, err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	_, factory := newMemoryStore()

	draft := draftOrder("0001")
	draft.ID = 42
	draft.Status = order.New
	cmd, _ := commands.NewUpdateOrderCommand(draft)

	_, err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
