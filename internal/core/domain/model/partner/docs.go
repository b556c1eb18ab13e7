// Package partner holds the delivery partner aggregate.
//
// Availability is stored, not derived: every partner row carries the number of
// its orders in Placed or Dispatched status. The placement transaction
// increments it, the status state machine decrements it on Delivered or Cancelled,
// and both happen in the same database transaction as the order change.
package partner
