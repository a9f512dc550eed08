// Package order provides the aggregate root of the fulfillment lifecycle and
// its closed enumerations.
//
// The package includes:
//   - Order: the aggregate owning lifecycle status, payment status, item and
//     customer snapshots, and staff assignments
//   - Status: the kitchen/delivery state machine with an explicit transition table
//   - PaymentMethod / PaymentStatus: the settlement dimensions
//   - Item / Customer: checkout-time snapshots
//
// Key business rules:
//   - Status follows pending -> confirmed -> preparing -> ready -> delivered,
//     with cancellation reachable from pending/confirmed (or by administrative
//     override from preparing/ready); terminal states accept no transitions
//   - The order total is always derived from item snapshots
//   - Payment and lifecycle status are independently recoverable dimensions
//   - The status history is append-only
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and Restore factories for persistence.
package order
