package queries

import (
	"errors"

	"gofer/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New(
	"ListAgentsQuery must be created via NewListAgentsQuery constructor",
)

// ListAgentsQuery retrieves every agent profile on the platform. Used by
// administrators overseeing the agent pool.
type ListAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListAgentsQuery creates a query listing all agents.
func NewListAgentsQuery() ListAgentsQuery {
	return ListAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}
