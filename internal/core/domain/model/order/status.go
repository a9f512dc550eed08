package order

import (
	"errors"
	"fmt"

	"sewrica/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. It implements a strict
// state machine: the kitchen/delivery pipeline has no "undo", so no edge ever
// re-enters a prior state.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal. Cancellation from preparing or ready
// is a privileged administrative override, not part of the customer-visible
// graph (see Order.Cancel).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	StatusPending

	// StatusConfirmed indicates the restaurant accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the kitchen started working on the order.
	// Requires a chef assignment.
	StatusPreparing

	// StatusReady indicates the order is cooked and awaiting handover.
	StatusReady

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state for abandoned orders.
	// Orders are never deleted; cancellation is a status, not a removal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// statusTransitions is the exhaustive edge table of the customer-visible
// state machine. Anything not listed here is an illegal transition.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady},
		StatusReady:     {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// ParseStatus converts the wire representation ("pending", "confirmed", ...)
// to a Status. Returns an error for unrecognized values.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire/persistence name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are legal from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the edge s -> target exists in the
// customer-visible state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a rejected status edge, naming both ends so
// the caller can see exactly which transition was refused.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s->%s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
