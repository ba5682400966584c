package queries

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders bound to an agent, all statuses,
// newest first. The agent is addressed by the owning user account.
type GetAgentOrdersQuery struct { //nolint:recvcheck //using for validation
	agentUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for one agent's orders.
func NewGetAgentOrdersQuery(agentUserID kernel.UUID) (GetAgentOrdersQuery, error) {
	q := GetAgentOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentUserID(agentUserID); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentUserID returns the user whose agent orders are listed.
func (q GetAgentOrdersQuery) AgentUserID() kernel.UUID {
	return q.agentUserID
}

func (q *GetAgentOrdersQuery) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	q.agentUserID = agentUserID
	return nil
}
