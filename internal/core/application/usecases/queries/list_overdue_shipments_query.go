package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrListOverdueShipmentsQueryIsNotConstructed = errors.New(
	"ListOverdueShipmentsQuery must be created via NewListOverdueShipmentsQuery constructor",
)

// ListOverdueShipmentsQuery retrieves active shipments that are not delivered and
// whose estimated arrival is before the reference date.
//
// Example:
//
//	query, _ := NewListOverdueShipmentsQuery(kernel.Today())
//	overdue, err := NewListOverdueShipmentsQueryHandler(shipments).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, item := range overdue {
//	    fmt.Printf("%s is %d days late\n", item.Shipment.Tracking, item.DaysLate)
//	}
type ListOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewListOverdueShipmentsQuery(asOf time.Time) (ListOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return ListOverdueShipmentsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return ListOverdueShipmentsQuery{asOf: kernel.DateOf(asOf), guard: guard.NewConstructorGuard()}, nil
}

func (q ListOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueShipmentsQueryIsNotConstructed)
}

func (q ListOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// ListOverdueShipmentsQueryResponse pairs an overdue shipment with the number of
// whole days since its estimated arrival.
type ListOverdueShipmentsQueryResponse struct {
	Shipment *shipment.Shipment
	DaysLate int
}
