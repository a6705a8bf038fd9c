package queries

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrFindOrderByNumberQueryIsNotConstructed = errors.New(
	"FindOrderByNumberQuery must be created via NewFindOrderByNumberQuery constructor",
)

// FindOrderByNumberQuery looks up the active order with an exact number.
type FindOrderByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

func NewFindOrderByNumberQuery(number string) (FindOrderByNumberQuery, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return FindOrderByNumberQuery{}, errs.NewValueIsRequiredError("number")
	}
	return FindOrderByNumberQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderByNumberQueryIsNotConstructed)
}

func (q FindOrderByNumberQuery) Number() string {
	return q.number
}
