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

// CardStrategy settles an order through the external card processor.
// Initiate registers a payment intent and hands the client secret back for
// the customer's browser to complete; Confirm applies the processor's
// verdict reported after the charge attempt.
type CardStrategy struct {
	processor CardProcessor
}

// Method identifies the payment method this strategy settles.
func (CardStrategy) Method() order.PaymentMethod {
	return order.MethodCard
}

// Initiate creates a payment intent for the order total and moves the
// payment to pending confirmation.
func (s CardStrategy) Initiate(ctx context.Context, o *order.Order) (PaymentHandle, error) {
	if err := o.Validate(); err != nil {
		return PaymentHandle{}, err
	}

	intent, err := s.processor.CreateIntent(ctx, o.ID(), o.TotalAmount())
	if err != nil {
		return PaymentHandle{}, fmt.Errorf("%w: %w", ErrPaymentProcessor, err)
	}

	if err := o.BeginPaymentConfirmation(); err != nil {
		return PaymentHandle{}, err
	}

	return PaymentHandle{
		Method:       order.MethodCard,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Confirm applies the processor's charge verdict. A declined charge moves
// the payment to failed and returns ErrCardPaymentDeclined; the order stays
// actionable so the customer can retry with another card.
func (s CardStrategy) Confirm(o *order.Order, evidence PaymentEvidence, now time.Time) (*payment.Record, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if evidence.IntentID == "" {
		return nil, errs.NewValueIsRequiredError("intentID")
	}

	if !evidence.Succeeded {
		if err := o.FailPayment(); err != nil {
			return nil, err
		}
		return nil, ErrCardPaymentDeclined
	}

	if err := o.CompletePayment(); err != nil {
		return nil, err
	}
	return payment.NewRecord(kernel.NewUUID(), o.ID(), order.MethodCard, evidence.IntentID, nil, nil, now)
}
