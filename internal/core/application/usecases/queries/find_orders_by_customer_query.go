package queries

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrFindOrdersByCustomerQueryIsNotConstructed = errors.New(
	"FindOrdersByCustomerQuery must be created via NewFindOrdersByCustomerQuery constructor",
)

// FindOrdersByCustomerQuery searches active orders whose customer name contains the
// fragment, ignoring case.
//
// Example:
//
//	query, _ := NewFindOrdersByCustomerQuery("lópez")
//	orders, err := NewFindOrdersByCustomerQueryHandler(repo).Handle(ctx, query)
//	// matches "Ana López" and "LÓPEZ HERMANOS"
type FindOrdersByCustomerQuery struct {
	fragment string

	guard guard.ConstructorGuard
}

func NewFindOrdersByCustomerQuery(fragment string) (FindOrdersByCustomerQuery, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return FindOrdersByCustomerQuery{}, errs.NewValueIsRequiredError("customerName")
	}
	return FindOrdersByCustomerQuery{fragment: fragment, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersByCustomerQueryIsNotConstructed)
}

func (q FindOrdersByCustomerQuery) Fragment() string {
	return q.fragment
}
