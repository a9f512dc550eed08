// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL and return read
// models, bypassing the aggregate layer for performance.
package queries

import (
	"errors"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items, assignments and status
// history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one priced line of an order read model.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	NameAm     string
	UnitPrice  int64
	Quantity   int
	LineTotal  int64
}

// StatusChangeResponse is one entry of an order's status history.
type StatusChangeResponse struct {
	Status    string
	ChangedAt time.Time
}

// AssignmentResponse describes a staff slot on an order read model.
type AssignmentResponse struct {
	StaffID    kernel.UUID
	AssignedAt time.Time
	Notes      string
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	PaymentStatus string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Fulfillment   string
	Address       string
	TotalAmount   int64
	CreatedAt     time.Time
	Chef          *AssignmentResponse
	Delivery      *AssignmentResponse
	Items         []OrderItemResponse
	History       []StatusChangeResponse
}
