// Package services provides domain services that coordinate more than one aggregate.
//
// The package includes:
//   - OrderDispatcher: chooses the delivery partner for a new order under the fairness rule
package services
