package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrSetAgentAvailabilityCommandIsNotConstructed = errors.New(
	"SetAgentAvailabilityCommand must be created via NewSetAgentAvailabilityCommand constructor",
)

// SetAgentAvailabilityCommand represents an agent toggling whether they are
// open for new assignments.
type SetAgentAvailabilityCommand struct { //nolint:recvcheck //using for validation
	agentUserID kernel.UUID
	available   bool

	guard guard.ConstructorGuard
}

// NewSetAgentAvailabilityCommand creates an availability toggle command.
func NewSetAgentAvailabilityCommand(agentUserID kernel.UUID, available bool) (SetAgentAvailabilityCommand, error) {
	cmd := SetAgentAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentUserID(agentUserID); err != nil {
		return SetAgentAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAgentAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentAvailabilityCommandIsNotConstructed)
}

// AgentUserID returns the agent's user account identifier.
func (c SetAgentAvailabilityCommand) AgentUserID() kernel.UUID {
	return c.agentUserID
}

// Available returns the requested availability.
func (c SetAgentAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetAgentAvailabilityCommand) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	c.agentUserID = agentUserID
	return nil
}
