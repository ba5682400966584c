package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is attempted on an order
// whose current status does not permit it. Callers classify with errors.Is.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be accepted by an agent.
	Pending

	// Accepted indicates an agent has been bound to the order.
	Accepted

	// InProgress indicates the agent has started work on the order.
	InProgress

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the snake_case name of a status. Used when
// restoring orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid. Used to verify Status
// values arriving from external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid only from Pending: an order must be unassigned and awaiting an agent.
// Returns (0, ErrInvalidTransition) otherwise.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot accept order in status %s", ErrInvalidTransition, s)
	}
	return Accepted, nil
}

// Start transitions the status to InProgress.
//
// Valid only from Accepted: the bound agent begins work.
// Returns (0, ErrInvalidTransition) otherwise.
func (s Status) Start() (Status, error) {
	if s != Accepted {
		return 0, fmt.Errorf("%w: cannot start order in status %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid only from InProgress. Completed is terminal.
// Returns (0, ErrInvalidTransition) otherwise.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot complete order in status %s", ErrInvalidTransition, s)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Returns (0, ErrInvalidTransition) for
// orders that are already completed or cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}

// ValidateCanHaveAgent validates the consistency between order status and
// agent assignment.
//
// Rules:
//   - Pending orders must not have an agent bound
//   - Accepted, InProgress and Completed orders must have an agent bound
//   - Cancelled orders may or may not have one (cancellation is allowed both
//     before and after assignment)
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if hasAgent && s == Pending {
		return fmt.Errorf("%w: %s is not a valid status to have an agent", ErrInvalidTransition, s)
	}
	if !hasAgent && (s == Accepted || s == InProgress || s == Completed) {
		return fmt.Errorf("%w: %s is not a valid status to have no agent", ErrInvalidTransition, s)
	}
	return nil
}
