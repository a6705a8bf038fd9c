package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment. With includeDeleted the shipment is
// returned even when soft-deleted, which is how a deleted shipment is inspected
// before it is restored.
type GetShipmentQuery struct {
	shipmentID     kernel.ID
	includeDeleted bool

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentID kernel.ID, includeDeleted bool) (GetShipmentQuery, error) {
	if err := shipmentID.Validate("id"); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		shipmentID:     shipmentID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

func (q GetShipmentQuery) IncludeDeleted() bool {
	return q.includeDeleted
}
