package ports

import (
	"context"

	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate
	// unconditionally.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// UpdateIfAvailable persists changes to an existing agent aggregate
	// only if the stored row is still flagged available. Used by the
	// assignment flow so that an agent racing to accept two orders wins at
	// most one. Returns ErrConcurrentUpdate when the guard does not match.
	UpdateIfAvailable(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByUserID retrieves the agent profile owned by the given user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*agent.Agent, error)
}
