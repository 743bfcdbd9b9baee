// Package order provides domain entities and business logic for the ordering
// workflow. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: An immutable order line carrying a plate-price snapshot
//   - Status: A state machine that enforces valid order status transitions
//   - Security pin generation and verification for physical hand-off
//
// Key business rules:
//   - Orders are created in Pending status with an exact-decimal total
//   - Status follows Pending -> InPreparation -> Ready -> Delivered,
//     with Pending -> Cancelled as the only branch
//   - Entering Ready attaches a cryptographically random 4-digit pin
//   - Delivery requires the supplied pin to match the stored pin exactly
package order
