package order

import (
	"errors"
	"fmt"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIneligibleOrderState is returned for staff assignment or payment
	// actions attempted on an order in a terminal state.
	ErrIneligibleOrderState = errors.New("order is in a terminal state")

	// ErrChefNotAssigned blocks the confirmed -> preparing transition until a
	// chef has been dispatched to the order.
	ErrChefNotAssigned = errors.New("a chef must be assigned before preparation can start")

	// ErrPaymentNotCompleted blocks ready -> delivered for non-cash orders
	// whose payment has not completed, when the delivery payment gate is on.
	ErrPaymentNotCompleted = errors.New("payment must be completed before delivery")

	// ErrCancellationNotPermitted is returned when a non-privileged caller
	// tries to cancel an order that has already entered preparation.
	ErrCancellationNotPermitted = errors.New("cancellation requires administrative override once preparation has started")
)

// Assignment records the dispatch of one staff member to an order.
type Assignment struct {
	StaffID    kernel.UUID
	AssignedAt time.Time
	Notes      string
}

// StatusChange is one entry of the append-only status history.
type StatusChange struct {
	Status    Status
	ChangedAt time.Time
}

// Order is the aggregate root of the fulfillment lifecycle. It owns three
// state dimensions: the kitchen/delivery status, the payment status, and the
// staff assignments, and it is the only place where any of them change.
//
// Invariants:
//   - TotalAmount always equals the sum of item line totals; it is derived,
//     never stored independently.
//   - Status only moves along the edges of the transition table in status.go.
//   - The status history is append-only.
//   - Staff assignment is rejected once the order is terminal.
//   - A failed payment mutation never changes Status.
//
// Orders can only be created through NewOrder (checkout) or RestoreOrder
// (persistence); all fields are private to keep the invariants enforceable.
type Order struct {
	id            kernel.UUID
	items         []Item
	customer      Customer
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	status        Status
	chef          *Assignment
	delivery      *Assignment
	createdAt     time.Time
	history       []StatusChange
	version       int
	isConstructed bool
}

// NewOrder creates an order from a checkout request. The item list must be
// non-empty and every line must be a valid snapshot. The order starts in
// pending/unpaid with a single history entry.
func NewOrder(
	id kernel.UUID,
	items []Item,
	customer Customer,
	method PaymentMethod,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		items:         append([]Item(nil), items...),
		customer:      customer,
		paymentMethod: method,
		paymentStatus: PaymentUnpaid,
		status:        StatusPending,
		createdAt:     now,
		history:       []StatusChange{{Status: StatusPending, ChangedAt: now}},
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All enum values and
// the item snapshots are re-validated so a corrupted row cannot produce an
// aggregate that violates the invariants.
func RestoreOrder(
	id kernel.UUID,
	items []Item,
	customer Customer,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	chef *Assignment,
	delivery *Assignment,
	createdAt time.Time,
	history []StatusChange,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(
		method.Validate(),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	return &Order{
		id:            id,
		items:         append([]Item(nil), items...),
		customer:      customer,
		paymentMethod: method,
		paymentStatus: paymentStatus,
		status:        status,
		chef:          chef,
		delivery:      delivery,
		createdAt:     createdAt,
		history:       append([]StatusChange(nil), history...),
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Customer returns the checkout contact snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// PaymentMethod returns the settlement method fixed at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Chef returns the current kitchen assignment, nil if unassigned.
func (o *Order) Chef() *Assignment {
	return o.chef
}

// Delivery returns the current delivery assignment, nil if unassigned.
func (o *Order) Delivery() *Assignment {
	return o.delivery
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns a copy of the append-only status log.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// Version returns the optimistic-concurrency counter. It is incremented by
// the persistence layer on every committed update.
func (o *Order) Version() int {
	return o.version
}

// TotalAmount derives the order total from the item snapshots. There is no
// stored total to drift out of sync.
func (o *Order) TotalAmount() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// transitionTo applies a validated edge and appends the history entry.
// Re-applying the current status is an idempotent no-op so retried
// administrative requests succeed without duplicating history.
func (o *Order) transitionTo(target Status, now time.Time) error {
	if o.status == target {
		return nil
	}
	if !o.status.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.status, target)
	}

	o.status = target
	o.history = append(o.history, StatusChange{Status: target, ChangedAt: now})
	return nil
}

// Confirm moves the order from pending to confirmed.
func (o *Order) Confirm(now time.Time) error {
	return o.transitionTo(StatusConfirmed, now)
}

// StartPreparing moves the order from confirmed to preparing.
// A chef must already be dispatched to the order.
func (o *Order) StartPreparing(now time.Time) error {
	if o.status == StatusPreparing {
		return nil
	}
	if !o.status.CanTransitionTo(StatusPreparing) {
		return NewInvalidTransitionError(o.status, StatusPreparing)
	}
	if o.chef == nil {
		return ErrChefNotAssigned
	}
	return o.transitionTo(StatusPreparing, now)
}

// MarkReady moves the order from preparing to ready.
func (o *Order) MarkReady(now time.Time) error {
	return o.transitionTo(StatusReady, now)
}

// MarkDelivered moves the order from ready to delivered. When
// requireCompletedPayment is set, non-cash orders must have a completed
// payment first; cash settles at the door and is always exempt.
func (o *Order) MarkDelivered(now time.Time, requireCompletedPayment bool) error {
	if o.status == StatusDelivered {
		return nil
	}
	if !o.status.CanTransitionTo(StatusDelivered) {
		return NewInvalidTransitionError(o.status, StatusDelivered)
	}
	if requireCompletedPayment &&
		o.paymentMethod != MethodCash &&
		o.paymentStatus != PaymentCompleted {
		return ErrPaymentNotCompleted
	}
	return o.transitionTo(StatusDelivered, now)
}

// Cancel moves the order to cancelled. Customers may cancel from pending or
// confirmed; once preparation has begun only a privileged administrative
// override may cancel. A completed payment is marked refunded so the money
// trail stays consistent (the processor-side refund happens out of band).
func (o *Order) Cancel(now time.Time, privileged bool) error {
	if o.status == StatusCancelled {
		return nil
	}

	switch o.status {
	case StatusPending, StatusConfirmed:
		// cancellable by anyone
	case StatusPreparing, StatusReady:
		if !privileged {
			return ErrCancellationNotPermitted
		}
	default:
		return NewInvalidTransitionError(o.status, StatusCancelled)
	}

	o.status = StatusCancelled
	o.history = append(o.history, StatusChange{Status: StatusCancelled, ChangedAt: now})

	if o.paymentStatus == PaymentCompleted {
		o.paymentStatus = PaymentRefunded
	}
	return nil
}

// ChangeStatus applies an externally requested transition to target.
// Cancellation goes through Cancel, which has its own permission rules.
func (o *Order) ChangeStatus(target Status, now time.Time, requirePaymentForDelivery bool) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case StatusConfirmed:
		return o.Confirm(now)
	case StatusPreparing:
		return o.StartPreparing(now)
	case StatusReady:
		return o.MarkReady(now)
	case StatusDelivered:
		return o.MarkDelivered(now, requirePaymentForDelivery)
	case StatusCancelled:
		return NewInvalidTransitionError(o.status, target)
	default:
		return NewInvalidTransitionError(o.status, target)
	}
}

// AssignChef dispatches a kitchen staff member to the order, overwriting any
// prior assignment. Rejected once the order is terminal.
func (o *Order) AssignChef(staffID kernel.UUID, now time.Time, notes string) error {
	return o.assign(&o.chef, staffID, now, notes)
}

// AssignDelivery dispatches a delivery staff member to the order, overwriting
// any prior assignment. Rejected once the order is terminal.
func (o *Order) AssignDelivery(staffID kernel.UUID, now time.Time, notes string) error {
	return o.assign(&o.delivery, staffID, now, notes)
}

func (o *Order) assign(slot **Assignment, staffID kernel.UUID, now time.Time, notes string) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrIneligibleOrderState
	}

	*slot = &Assignment{
		StaffID:    staffID,
		AssignedAt: now,
		Notes:      notes,
	}
	return nil
}

// BeginPaymentConfirmation marks settlement as initiated and awaiting
// external confirmation (card intent created, or mobile-money instructions
// issued). Legal from unpaid and from failed (retry).
func (o *Order) BeginPaymentConfirmation() error {
	return o.movePayment(PaymentPending)
}

// CompletePayment marks the full amount as received. Re-completing an already
// completed payment is an idempotent no-op.
func (o *Order) CompletePayment() error {
	if o.paymentStatus == PaymentCompleted {
		return nil
	}
	return o.movePayment(PaymentCompleted)
}

// FailPayment records an external settlement failure. The order itself stays
// actionable; only the payment dimension changes.
func (o *Order) FailPayment() error {
	if o.paymentStatus == PaymentFailed {
		return nil
	}
	return o.movePayment(PaymentFailed)
}

func (o *Order) movePayment(target PaymentStatus) error {
	if !o.paymentStatus.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s->%s", ErrInvalidPaymentTransition, o.paymentStatus, target)
	}
	o.paymentStatus = target
	return nil
}
