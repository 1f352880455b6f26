// Package queries contains read-only use cases. Handlers read straight from the
// database into flat views and never load aggregates.
package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery returns every order, newest first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderView is an order flattened with its address and a readable status.
type OrderView struct {
	OrderNumber string
	Description string
	Value       decimal.Decimal
	PostalCode  string
	Street      string
	Number      string
	District    string
	City        string
	State       string
	Status      string
	CreatedAt   time.Time
}
