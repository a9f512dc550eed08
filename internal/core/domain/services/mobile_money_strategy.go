package services

import (
	"context"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/pkg/errs"
)

// MobileMoneyConfig identifies the merchant account customers transfer to.
type MobileMoneyConfig struct {
	Recipient string
	Account   string
	DialCode  string
}

// MobileMoneyStrategy settles an order through a customer-initiated mobile
// money transfer. Initiate hands out transfer instructions; the transfer
// itself happens outside the system, so Confirm is an operator action that
// records the transfer reference once the money is seen on the merchant
// account.
type MobileMoneyStrategy struct {
	config MobileMoneyConfig
}

// Method identifies the payment method this strategy settles.
func (MobileMoneyStrategy) Method() order.PaymentMethod {
	return order.MethodMobileMoney
}

// Initiate moves the payment to pending confirmation and returns the
// transfer instructions, citing the order id as the reference the customer
// should include.
func (s MobileMoneyStrategy) Initiate(_ context.Context, o *order.Order) (PaymentHandle, error) {
	if err := o.Validate(); err != nil {
		return PaymentHandle{}, err
	}
	if err := o.BeginPaymentConfirmation(); err != nil {
		return PaymentHandle{}, err
	}

	return PaymentHandle{
		Method: order.MethodMobileMoney,
		Instructions: &MobileMoneyInstructions{
			Recipient: s.config.Recipient,
			Account:   s.config.Account,
			DialCode:  s.config.DialCode,
			Reference: o.ID().String(),
		},
	}, nil
}

// Confirm records an operator-verified transfer. The reference of the
// sighted transfer is required.
func (s MobileMoneyStrategy) Confirm(o *order.Order, evidence PaymentEvidence, now time.Time) (*payment.Record, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if evidence.Reference == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	if err := o.CompletePayment(); err != nil {
		return nil, err
	}
	return payment.NewRecord(kernel.NewUUID(), o.ID(), order.MethodMobileMoney, evidence.Reference, nil, nil, now)
}
