// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the foodcourt system. It implements
// checks that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderValidator: stateless checks guarding the order lifecycle, from
//     order structure and the one-active-order rule to plate consistency and
//     actor ownership
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
