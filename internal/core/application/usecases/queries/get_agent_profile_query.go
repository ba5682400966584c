package queries

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrGetAgentProfileQueryIsNotConstructed = errors.New(
	"GetAgentProfileQuery must be created via NewGetAgentProfileQuery constructor",
)

// GetAgentProfileQuery retrieves an agent's own profile.
type GetAgentProfileQuery struct { //nolint:recvcheck //using for validation
	agentUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentProfileQuery creates a query for one agent's profile.
func NewGetAgentProfileQuery(agentUserID kernel.UUID) (GetAgentProfileQuery, error) {
	q := GetAgentProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentUserID(agentUserID); err != nil {
		return GetAgentProfileQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentProfileQueryIsNotConstructed)
}

// AgentUserID returns the agent's user account identifier.
func (q GetAgentProfileQuery) AgentUserID() kernel.UUID {
	return q.agentUserID
}

func (q *GetAgentProfileQuery) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	q.agentUserID = agentUserID
	return nil
}

// AgentProfileResponse is the read model for an agent profile listing.
type AgentProfileResponse struct {
	AgentID               kernel.UUID
	FullName              string
	Bio                   string
	ProfilePhoto          string
	IsAvailable           bool
	BackgroundCheckStatus string
	TotalJobs             int
	CompletedJobs         int
	AverageRating         float64
	CreatedAt             time.Time
}
