package payment

import (
	"errors"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the durable evidence of one settled (or operator-confirmed)
// payment. Exactly one completed Record exists per settled order; the card
// strategy's idempotency check looks records up by external reference before
// applying evidence a second time.
type Record struct {
	id                kernel.UUID
	orderID           kernel.UUID
	method            order.PaymentMethod
	externalReference string        // processor intent id or mobile-money reference, empty for cash
	amountReceived    *kernel.Money // cash only
	change            *kernel.Money // cash only
	confirmedAt       time.Time
	guard             guard.ConstructorGuard
}

// NewRecord creates a payment record. Cash records must carry the received
// amount; card and mobile-money records must carry an external reference.
func NewRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	method order.PaymentMethod,
	externalReference string,
	amountReceived *kernel.Money,
	change *kernel.Money,
	confirmedAt time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate()); err != nil {
		return nil, err
	}
	if method == order.MethodCash && amountReceived == nil {
		return nil, errs.NewValueIsRequiredError("amountReceived")
	}
	if method != order.MethodCash && externalReference == "" {
		return nil, errs.NewValueIsRequiredError("externalReference")
	}
	if confirmedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("confirmedAt")
	}

	return &Record{
		id:                id,
		orderID:           orderID,
		method:            method,
		externalReference: externalReference,
		amountReceived:    amountReceived,
		change:            change,
		confirmedAt:       confirmedAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	method order.PaymentMethod,
	externalReference string,
	amountReceived *kernel.Money,
	change *kernel.Money,
	confirmedAt time.Time,
) (*Record, error) {
	return NewRecord(id, orderID, method, externalReference, amountReceived, change, confirmedAt)
}

// Validate ensures the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the settled order's identifier.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Method returns the settlement method.
func (r *Record) Method() order.PaymentMethod {
	return r.method
}

// ExternalReference returns the processor or transfer reference,
// empty for cash.
func (r *Record) ExternalReference() string {
	return r.externalReference
}

// AmountReceived returns the cash amount handed over, nil for other methods.
func (r *Record) AmountReceived() *kernel.Money {
	return r.amountReceived
}

// Change returns the cash change due back, nil for other methods.
func (r *Record) Change() *kernel.Money {
	return r.change
}

// ConfirmedAt returns when the payment was confirmed.
func (r *Record) ConfirmedAt() time.Time {
	return r.confirmedAt
}
