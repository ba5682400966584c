package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrUpdateAgentProfileCommandIsNotConstructed = errors.New(
	"UpdateAgentProfileCommand must be created via NewUpdateAgentProfileCommand constructor",
)

// UpdateAgentProfileCommand represents an agent editing their public
// profile. Only the bio and profile photo are agent-editable; vetting state
// and statistics are system-managed.
type UpdateAgentProfileCommand struct { //nolint:recvcheck //using for validation
	agentUserID  kernel.UUID
	bio          string
	profilePhoto string

	guard guard.ConstructorGuard
}

// NewUpdateAgentProfileCommand creates a profile edit command.
func NewUpdateAgentProfileCommand(agentUserID kernel.UUID, bio, profilePhoto string) (UpdateAgentProfileCommand, error) {
	cmd := UpdateAgentProfileCommand{
		bio:          bio,
		profilePhoto: profilePhoto,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentUserID(agentUserID); err != nil {
		return UpdateAgentProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentProfileCommandIsNotConstructed)
}

// AgentUserID returns the agent's user account identifier.
func (c UpdateAgentProfileCommand) AgentUserID() kernel.UUID {
	return c.agentUserID
}

// Bio returns the new bio text.
func (c UpdateAgentProfileCommand) Bio() string {
	return c.bio
}

// ProfilePhoto returns the new profile photo reference.
func (c UpdateAgentProfileCommand) ProfilePhoto() string {
	return c.profilePhoto
}

func (c *UpdateAgentProfileCommand) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	c.agentUserID = agentUserID
	return nil
}
