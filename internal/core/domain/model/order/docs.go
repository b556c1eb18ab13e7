// Package order provides the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: the aggregate root created by the placement transaction
//   - Status: a state machine that enforces legal status transitions
//   - PlacedEvent, StatusChangedEvent: domain events written to the outbox
//
// Key business rules:
//   - Every field except status is write-once
//   - Total price is frozen at placement time
//   - Status follows Placed -> Dispatched -> Delivered, with Cancelled reachable from
//     Placed or Dispatched; Delivered and Cancelled are terminal
//   - A transition into a terminal status frees the assigned partner
package order
