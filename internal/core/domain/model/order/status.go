package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed is returned when a status change leaves the lifecycle graph.
var ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Dispatched ──> Delivered
//	  │            │
//	  └────────────┴────────> Cancelled
//
// Delivered and Cancelled are terminal. While an order is Placed or Dispatched
// its delivery partner counts as busy.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set by the placement transaction.
	Placed

	// Dispatched indicates the partner has picked the order up.
	Dispatched

	// Delivered is terminal: the partner is free again.
	Delivered

	// Cancelled is terminal: the partner is free again.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Placed:     "Placed",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getAllowedTransitions lists, per status, the statuses it may move to.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and Unknown statuses have no outgoing edges
	return map[Status][]Status{
		Placed:     {Dispatched, Cancelled},
		Dispatched: {Delivered, Cancelled},
	}
}

// ParseStatus maps the wire representation ("Placed", "Dispatched", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the four lifecycle values.
func (s Status) Validate() error {
	if s < Placed || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the order is finished.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order still occupies its partner.
func (s Status) IsActive() bool {
	return s == Placed || s == Dispatched
}

// TransitionTo returns next if the lifecycle graph has an edge s -> next.
// Re-applying the current status is accepted and leaves the order unchanged.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return Unknown, err
	}
	if s == next {
		return s, nil
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, s, next)
}
