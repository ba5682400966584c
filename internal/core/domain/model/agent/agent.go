package agent

import (
	"errors"
	"fmt"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
	"gofer/internal/pkg/guard"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not created
	// through the NewAgent or RestoreAgent factory methods.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")

	// ErrAgentUnavailable is returned when a lifecycle operation requires an
	// available agent but the agent is flagged unavailable.
	ErrAgentUnavailable = errors.New("agent is not available")

	// ErrStatsOutOfSync is returned when a job-outcome mutation would break the
	// invariant completed_jobs + cancelled_jobs <= total_jobs, meaning an
	// outcome was recorded without a matching assignment.
	ErrStatsOutOfSync = errors.New("agent job statistics are out of sync")
)

// Agent represents a field worker who accepts and fulfills customer orders.
// It is an aggregate root holding the availability flag — the single source
// of truth consulted by the assignment arbiter — together with vetting state
// and cumulative job statistics.
//
// Invariants:
//   - completed_jobs + cancelled_jobs never exceeds total_jobs
//   - is_available is mutated only by lifecycle transitions and explicit
//     availability toggles: false on assignment, true on completion or
//     cancellation-after-assignment
//   - average rating stays within [0, 5]
type Agent struct {
	// id uniquely identifies the agent profile
	id kernel.UUID
	// userID references the owning user account (1:1)
	userID kernel.UUID

	bio          string
	profilePhoto string

	// isAvailable is consulted by the assignment arbiter
	isAvailable bool

	backgroundCheckStatus BackgroundCheckStatus
	backgroundCheckDate   *time.Time

	totalJobs     int
	completedJobs int
	cancelledJobs int
	averageRating float64
	totalEarnings kernel.Money

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewAgent creates a fresh agent profile for a user: unavailable, background
// check pending, all statistics zeroed.
func NewAgent(id kernel.UUID, userID kernel.UUID, createdAt time.Time) (*Agent, error) {
	a := &Agent{
		backgroundCheckStatus: BackgroundCheckPending,
		createdAt:             createdAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage,
// verifying the statistics invariant and rating bounds.
func RestoreAgent(
	id kernel.UUID,
	userID kernel.UUID,
	bio string,
	profilePhoto string,
	isAvailable bool,
	backgroundCheckStatus BackgroundCheckStatus,
	backgroundCheckDate *time.Time,
	totalJobs, completedJobs, cancelledJobs int,
	averageRating float64,
	totalEarnings kernel.Money,
	createdAt time.Time,
) (*Agent, error) {
	if err := backgroundCheckStatus.Validate(); err != nil {
		return nil, err
	}
	if totalJobs < 0 || completedJobs < 0 || cancelledJobs < 0 {
		return nil, errs.NewValueIsInvalidError("job counters must not be negative")
	}
	if completedJobs+cancelledJobs > totalJobs {
		return nil, fmt.Errorf("%w: %d completed + %d cancelled > %d total",
			ErrStatsOutOfSync, completedJobs, cancelledJobs, totalJobs)
	}
	if averageRating < 0 || averageRating > 5 {
		return nil, errs.NewValueIsOutOfRangeError("average rating", averageRating, 0, 5)
	}

	a := &Agent{
		bio:                   bio,
		profilePhoto:          profilePhoto,
		isAvailable:           isAvailable,
		backgroundCheckStatus: backgroundCheckStatus,
		backgroundCheckDate:   backgroundCheckDate,
		totalJobs:             totalJobs,
		completedJobs:         completedJobs,
		cancelledJobs:         cancelledJobs,
		averageRating:         averageRating,
		totalEarnings:         totalEarnings,
		createdAt:             createdAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// ID returns the agent profile's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// UserID returns the owning user account's identifier.
func (a *Agent) UserID() kernel.UUID {
	return a.userID
}

// Bio returns the agent's profile bio.
func (a *Agent) Bio() string {
	return a.bio
}

// ProfilePhoto returns the agent's profile photo URL.
func (a *Agent) ProfilePhoto() string {
	return a.profilePhoto
}

// IsAvailable reports whether the agent can accept new orders.
func (a *Agent) IsAvailable() bool {
	return a.isAvailable
}

// BackgroundCheckStatus returns the vetting state.
func (a *Agent) BackgroundCheckStatus() BackgroundCheckStatus {
	return a.backgroundCheckStatus
}

// BackgroundCheckDate returns when the check was last reviewed, or nil.
func (a *Agent) BackgroundCheckDate() *time.Time {
	return a.backgroundCheckDate
}

// TotalJobs returns the number of orders the agent has ever accepted.
func (a *Agent) TotalJobs() int {
	return a.totalJobs
}

// CompletedJobs returns the number of orders the agent completed.
func (a *Agent) CompletedJobs() int {
	return a.completedJobs
}

// CancelledJobs returns the number of accepted orders later cancelled.
func (a *Agent) CancelledJobs() int {
	return a.cancelledJobs
}

// AverageRating returns the agent's average customer rating in [0, 5].
func (a *Agent) AverageRating() float64 {
	return a.averageRating
}

// TotalEarnings returns the cumulative service fees earned by the agent.
func (a *Agent) TotalEarnings() kernel.Money {
	return a.totalEarnings
}

// CreatedAt returns when the profile was created.
func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

// CompletionRate returns the percentage of accepted jobs that were completed.
func (a *Agent) CompletionRate() float64 {
	if a.totalJobs == 0 {
		return 0
	}
	return float64(a.completedJobs) / float64(a.totalJobs) * 100
}

// UpdateProfile sets the agent's editable profile attributes.
func (a *Agent) UpdateProfile(bio, profilePhoto string) {
	a.bio = bio
	a.profilePhoto = profilePhoto
}

// SetAvailability toggles whether the agent is open for new assignments.
// Used by the agent directly; lifecycle transitions use MarkBusy,
// RecordCompletion and RecordCancellation instead.
func (a *Agent) SetAvailability(available bool) {
	a.isAvailable = available
}

// MarkBusy records the acceptance of an order: the total job counter is
// incremented and the agent becomes unavailable. Returns ErrAgentUnavailable
// if the agent is already busy or offline.
//
// This mutation must commit atomically with the order's Accept transition;
// the accept command handler coordinates the two.
func (a *Agent) MarkBusy() error {
	if !a.isAvailable {
		return ErrAgentUnavailable
	}

	a.totalJobs++
	a.isAvailable = false
	return nil
}

// RecordCompletion credits the agent with a completed job: the completion
// counter is incremented, the service fee (not pass-through costs) is added
// to earnings, and the agent becomes available again.
func (a *Agent) RecordCompletion(serviceFee kernel.Money) error {
	if a.completedJobs+a.cancelledJobs >= a.totalJobs {
		return ErrStatsOutOfSync
	}

	a.completedJobs++
	a.totalEarnings = a.totalEarnings.Add(serviceFee)
	a.isAvailable = true
	return nil
}

// RecordCancellation records the cancellation of an order the agent had
// accepted: the cancellation counter is incremented and the agent becomes
// available again. No earnings effect.
func (a *Agent) RecordCancellation() error {
	if a.completedJobs+a.cancelledJobs >= a.totalJobs {
		return ErrStatsOutOfSync
	}

	a.cancelledJobs++
	a.isAvailable = true
	return nil
}

// ReviewBackgroundCheck records an administrator's vetting decision.
// Only approved or rejected are acceptable decisions.
func (a *Agent) ReviewBackgroundCheck(decision BackgroundCheckStatus, at time.Time) error {
	if decision != BackgroundCheckApproved && decision != BackgroundCheckRejected {
		return errs.NewValueIsInvalidErrorWithCause("background check decision",
			fmt.Errorf("%s is not a reviewable decision", decision))
	}

	a.backgroundCheckStatus = decision
	a.backgroundCheckDate = &at
	return nil
}

// setID validates and sets the agent's unique identifier.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setUserID validates and sets the owning user reference.
func (a *Agent) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}
