package payment

import (
	"errors"
	"fmt"

	"gofer/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a payment status transition
// is not allowed from the current state.
var ErrInvalidStatusTransition = errors.New("invalid payment status transition")

// Status is the lifecycle state of a payment record.
type Status int

const (
	// StatusUnknown is the zero value, not a valid status.
	StatusUnknown Status = iota
	// StatusPending means the payment record exists but no provider
	// decision has been received yet.
	StatusPending
	// StatusProcessing means an authorization is in flight at the provider.
	StatusProcessing
	// StatusSucceeded means the charge was captured.
	StatusSucceeded
	// StatusFailed means the provider declined or the attempt errored.
	StatusFailed
	// StatusRefunded means a previously captured charge was reversed.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusSucceeded:  "succeeded",
		StatusFailed:     "failed",
		StatusRefunded:   "refunded",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"pending":    StatusPending,
		"processing": StatusProcessing,
		"succeeded":  StatusSucceeded,
		"failed":     StatusFailed,
		"refunded":   StatusRefunded,
	}
}

// StatusFromString parses a status name into a Status.
func StatusFromString(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return StatusUnknown, errs.NewValueIsInvalidError("payment status")
	}
	return status, nil
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the status name, or "unknown" for undefined values.
func (s Status) String() string {
	str, ok := getStatusStrings()[s]
	if !ok {
		return getStatusStrings()[StatusUnknown]
	}
	return str
}

// succeed validates the transition into StatusSucceeded. Failed attempts may
// still succeed later when the provider retries.
func (s Status) succeed() (Status, error) {
	switch s {
	case StatusPending, StatusProcessing, StatusFailed:
		return StatusSucceeded, nil
	default:
		return s, fmt.Errorf("%w: cannot succeed from %s", ErrInvalidStatusTransition, s)
	}
}

// fail validates the transition into StatusFailed.
func (s Status) fail() (Status, error) {
	switch s {
	case StatusPending, StatusProcessing:
		return StatusFailed, nil
	default:
		return s, fmt.Errorf("%w: cannot fail from %s", ErrInvalidStatusTransition, s)
	}
}

// refund validates the transition into StatusRefunded. Only captured
// charges can be reversed.
func (s Status) refund() (Status, error) {
	if s != StatusSucceeded {
		return s, fmt.Errorf("%w: cannot refund from %s", ErrInvalidStatusTransition, s)
	}
	return StatusRefunded, nil
}
