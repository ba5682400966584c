package queries

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrGetAgentStatsQueryIsNotConstructed = errors.New(
	"GetAgentStatsQuery must be created via NewGetAgentStatsQuery constructor",
)

// GetAgentStatsQuery retrieves an agent's performance dashboard by the
// owning user account.
type GetAgentStatsQuery struct { //nolint:recvcheck //using for validation
	agentUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentStatsQuery creates a query for an agent's statistics.
func NewGetAgentStatsQuery(agentUserID kernel.UUID) (GetAgentStatsQuery, error) {
	q := GetAgentStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentUserID(agentUserID); err != nil {
		return GetAgentStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentStatsQueryIsNotConstructed)
}

// AgentUserID returns the agent's user account identifier.
func (q GetAgentStatsQuery) AgentUserID() kernel.UUID {
	return q.agentUserID
}

func (q *GetAgentStatsQuery) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	q.agentUserID = agentUserID
	return nil
}

// AgentStatsResponse is the agent dashboard read model. CompletionRate is
// the percentage of accepted jobs that were completed.
type AgentStatsResponse struct {
	AgentID               kernel.UUID
	IsAvailable           bool
	BackgroundCheckStatus string
	TotalJobs             int
	CompletedJobs         int
	CancelledJobs         int
	CompletionRate        float64
	AverageRating         float64
	TotalEarningsCents    int64
}
