// Package order provides the Order aggregate of the logistics backend.
//
// The package includes:
//   - Order: The aggregate root holding the order number, description, value,
//     delivery address and lifecycle status
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Order number and description are trimmed and must be non-empty
//   - Value must be greater than zero
//   - Status follows Created -> Delivered and never goes back
//   - Delivering an already delivered order is an invariant violation
package order
