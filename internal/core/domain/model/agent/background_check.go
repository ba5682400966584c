package agent

import (
	"fmt"

	"gofer/internal/pkg/errs"
)

// BackgroundCheckStatus represents the vetting state of an agent.
// Agents are created with a pending check; an administrator later approves
// or rejects it.
type BackgroundCheckStatus int

const (
	// BackgroundCheckUnknown represents an invalid or undefined status.
	BackgroundCheckUnknown BackgroundCheckStatus = iota

	// BackgroundCheckPending is the initial state for a new agent profile.
	BackgroundCheckPending

	// BackgroundCheckApproved means the agent passed vetting.
	BackgroundCheckApproved

	// BackgroundCheckRejected means the agent failed vetting.
	BackgroundCheckRejected
)

func getBackgroundCheckStrings() map[BackgroundCheckStatus]string {
	return map[BackgroundCheckStatus]string{
		BackgroundCheckUnknown:  "unknown",
		BackgroundCheckPending:  "pending",
		BackgroundCheckApproved: "approved",
		BackgroundCheckRejected: "rejected",
	}
}

// BackgroundCheckStatusFromString parses a stored status string.
func BackgroundCheckStatusFromString(s string) (BackgroundCheckStatus, error) {
	for status, str := range getBackgroundCheckStrings() {
		if str == s && status != BackgroundCheckUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("background check status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the status value is one of pending, approved or rejected.
func (s BackgroundCheckStatus) Validate() error {
	switch s {
	case BackgroundCheckPending, BackgroundCheckApproved, BackgroundCheckRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("background check status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the snake_case name of the status.
func (s BackgroundCheckStatus) String() string {
	if str, ok := getBackgroundCheckStrings()[s]; ok {
		return str
	}
	return "unknown"
}
