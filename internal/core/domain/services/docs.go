// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the restaurant fulfillment system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StaffDispatcher: assigns chefs and delivery staff to orders with role checks
//   - PaymentStrategy implementations: per-method settlement workflows for cash,
//     card and mobile money, producing durable payment records
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
