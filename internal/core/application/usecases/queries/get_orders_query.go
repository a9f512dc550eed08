package queries

import (
	"errors"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists order summaries, optionally filtered to one status.
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersInStatusQuery creates a query listing orders in one status.
func NewGetOrdersInStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	return GetOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when listing all orders.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	PaymentStatus string
	CustomerName  string
	Fulfillment   string
	TotalAmount   int64
	CreatedAt     time.Time
}
