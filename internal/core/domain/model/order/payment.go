package order

import (
	"errors"
	"fmt"

	"sewrica/internal/pkg/errs"
)

// ErrInvalidPaymentTransition is returned when a payment status mutation does
// not follow the payment state machine. Payment status and order status are
// independent dimensions: a rejected payment mutation never touches Status.
var ErrInvalidPaymentTransition = errors.New("invalid payment status transition")

// PaymentMethod identifies which settlement strategy applies to an order.
// It is fixed at checkout and never changes.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota

	// MethodCash is settled in person, at or after delivery.
	MethodCash

	// MethodCard is settled through the hosted card processor
	// via a payment intent.
	MethodCard

	// MethodMobileMoney is settled by a manual mobile-money transfer,
	// confirmed out-of-band by an operator.
	MethodMobileMoney
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		MethodCash:           "cash",
		MethodCard:           "card",
		MethodMobileMoney:    "mobile_money",
	}
}

// ParsePaymentMethod converts the wire representation to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, str := range paymentMethodStrings() {
		if str == s && method != PaymentMethodUnknown {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[m]; !ok || m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire/persistence name of the method.
func (m PaymentMethod) String() string {
	if str, ok := paymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks settlement progress independently of the order
// lifecycle so that payment failures stay recoverable without disturbing
// kitchen state.
//
//	unpaid ──> pending_confirmation ──> completed ──> refunded
//	   │             │        ^
//	   │             v        │
//	   └─────────> failed ────┘   (retry via a new initiate)
//	   │
//	   └─────────> completed       (cash settles in one step)
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial settlement state at checkout.
	PaymentUnpaid

	// PaymentPending means settlement was initiated but external
	// confirmation has not arrived yet.
	PaymentPending

	// PaymentCompleted means the full amount has been received.
	PaymentCompleted

	// PaymentFailed means the external processor reported a failure.
	// The order remains actionable: a new initiate moves it back to pending.
	PaymentFailed

	// PaymentRefunded marks completed payments of cancelled orders.
	PaymentRefunded
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentUnpaid:        "unpaid",
		PaymentPending:       "pending_confirmation",
		PaymentCompleted:     "completed",
		PaymentFailed:        "failed",
		PaymentRefunded:      "refunded",
	}
}

func paymentStatusTransitions() map[PaymentStatus][]PaymentStatus {
	return map[PaymentStatus][]PaymentStatus{
		PaymentUnpaid:    {PaymentPending, PaymentCompleted, PaymentFailed},
		PaymentPending:   {PaymentCompleted, PaymentFailed},
		PaymentFailed:    {PaymentPending},
		PaymentCompleted: {PaymentRefunded},
		PaymentRefunded:  {},
	}
}

// ParsePaymentStatus converts the wire representation to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range paymentStatusStrings() {
		if str == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is one of the defined states.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[s]; !ok || s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire/persistence name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the settlement edge s -> target is legal.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, next := range paymentStatusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}
