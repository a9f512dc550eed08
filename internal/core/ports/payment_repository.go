package ports

import (
	"context"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, record *payment.Record) error

	// GetByOrder retrieves the payment record settled against the given
	// order, or errs.ErrObjectNotFound when the order is unsettled.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Record, error)

	// GetByReference retrieves a payment record by its external reference.
	// Used to make card confirmations idempotent: a second confirmation of
	// the same intent returns the existing record instead of writing a new
	// one.
	GetByReference(ctx context.Context, reference string) (*payment.Record, error)
}
