package services

import (
	"context"
	"fmt"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/pkg/errs"
)

// CashStrategy settles an order at handover. There is nothing to initiate;
// confirmation checks the received amount against the order total and
// computes change.
type CashStrategy struct{}

// Method identifies the payment method this strategy settles.
func (CashStrategy) Method() order.PaymentMethod {
	return order.MethodCash
}

// Initiate is a no-op for cash. The payment stays unpaid until handover.
func (CashStrategy) Initiate(_ context.Context, o *order.Order) (PaymentHandle, error) {
	if err := o.Validate(); err != nil {
		return PaymentHandle{}, err
	}
	return PaymentHandle{Method: order.MethodCash}, nil
}

// Confirm applies a cash handover. The received amount must cover the order
// total; anything above it comes back as change. An underpayment leaves the
// payment status untouched.
func (CashStrategy) Confirm(o *order.Order, evidence PaymentEvidence, now time.Time) (*payment.Record, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if evidence.AmountReceived == nil {
		return nil, errs.NewValueIsRequiredError("amountReceived")
	}

	total := o.TotalAmount()
	received := *evidence.AmountReceived
	if !received.IsGreaterOrEqual(total) {
		return nil, fmt.Errorf("%w: received %s, total %s", ErrInsufficientAmount, received, total)
	}

	if err := o.CompletePayment(); err != nil {
		return nil, err
	}

	change, err := received.Sub(total)
	if err != nil {
		return nil, err
	}

	return payment.NewRecord(kernel.NewUUID(), o.ID(), order.MethodCash, "", &received, &change, now)
}
