package services

import (
	"context"
	"errors"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"
	"sewrica/internal/pkg/errs"
)

var (
	// ErrInsufficientAmount is returned when cash handed over does not cover
	// the order total.
	ErrInsufficientAmount = errors.New("amount received does not cover the order total")

	// ErrCardPaymentDeclined is returned when the processor reports the card
	// charge failed. The order's payment moves to failed but the order itself
	// stays actionable so the customer can retry.
	ErrCardPaymentDeclined = errors.New("card payment was declined")

	// ErrUnsupportedPaymentMethod is returned when no strategy is registered
	// for the order's payment method.
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

	// ErrPaymentProcessor is returned when the external card processor could
	// not be reached or rejected the intent request outright.
	ErrPaymentProcessor = errors.New("payment processor failure")
)

// CardProcessor abstracts the external card payment provider. Implemented by
// the outbound HTTP adapter; replaced with a mock in tests.
type CardProcessor interface {
	// CreateIntent registers a charge for the given amount with the processor
	// and returns the intent reference plus the client secret the customer's
	// browser needs to complete the charge.
	CreateIntent(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (CardIntent, error)
}

// CardIntent is the processor's handle for a pending card charge.
type CardIntent struct {
	ID           string
	ClientSecret string
}

// MobileMoneyInstructions tells the customer how to complete a mobile-money
// transfer for their order.
type MobileMoneyInstructions struct {
	Recipient string
	Account   string
	DialCode  string
	Reference string
}

// PaymentHandle is what initiating a payment hands back to the caller.
// Which fields are populated depends on the method: card payments carry an
// intent id and client secret, mobile-money payments carry transfer
// instructions, cash payments carry nothing because settlement happens at
// handover.
type PaymentHandle struct {
	Method       order.PaymentMethod
	IntentID     string
	ClientSecret string
	Instructions *MobileMoneyInstructions
}

// PaymentEvidence carries the method-specific proof of settlement presented
// when confirming a payment.
type PaymentEvidence struct {
	AmountReceived *kernel.Money // cash
	IntentID       string        // card
	Succeeded      bool          // card: processor's verdict
	Reference      string        // mobile money: transfer reference
}

// PaymentStrategy is the per-method settlement workflow. Initiate prepares
// the payment and moves the order's payment status where the method requires;
// Confirm applies settlement evidence and produces the durable payment record.
// A failed Confirm never leaves the payment marked completed.
type PaymentStrategy interface {
	Method() order.PaymentMethod
	Initiate(ctx context.Context, o *order.Order) (PaymentHandle, error)
	Confirm(o *order.Order, evidence PaymentEvidence, now time.Time) (*payment.Record, error)
}

// PaymentStrategySet holds one strategy per supported payment method.
type PaymentStrategySet struct {
	strategies map[order.PaymentMethod]PaymentStrategy
}

// NewPaymentStrategySet wires the three supported settlement workflows.
func NewPaymentStrategySet(processor CardProcessor, mobileMoney MobileMoneyConfig) (PaymentStrategySet, error) {
	if processor == nil {
		return PaymentStrategySet{}, errs.NewValueIsRequiredError("processor")
	}

	return PaymentStrategySet{
		strategies: map[order.PaymentMethod]PaymentStrategy{
			order.MethodCash:        CashStrategy{},
			order.MethodCard:        CardStrategy{processor: processor},
			order.MethodMobileMoney: MobileMoneyStrategy{config: mobileMoney},
		},
	}, nil
}

// For returns the strategy handling the given payment method.
func (s PaymentStrategySet) For(method order.PaymentMethod) (PaymentStrategy, error) {
	strategy, ok := s.strategies[method]
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return strategy, nil
}
