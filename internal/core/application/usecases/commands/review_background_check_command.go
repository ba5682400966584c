package commands

import (
	"errors"

	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrReviewBackgroundCheckCommandIsNotConstructed = errors.New(
	"ReviewBackgroundCheckCommand must be created via NewReviewBackgroundCheckCommand constructor",
)

// ReviewBackgroundCheckCommand represents an administrator's vetting
// decision on an agent.
type ReviewBackgroundCheckCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	decision agent.BackgroundCheckStatus

	guard guard.ConstructorGuard
}

// NewReviewBackgroundCheckCommand creates a vetting decision command. The
// decision must be approved or rejected.
func NewReviewBackgroundCheckCommand(agentID kernel.UUID, decision agent.BackgroundCheckStatus) (ReviewBackgroundCheckCommand, error) {
	cmd := ReviewBackgroundCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setDecision(decision),
	); err != nil {
		return ReviewBackgroundCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewBackgroundCheckCommand) Validate() error {
	return c.guard.Validate(ErrReviewBackgroundCheckCommandIsNotConstructed)
}

// AgentID returns the reviewed agent's identifier.
func (c ReviewBackgroundCheckCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Decision returns the vetting decision.
func (c ReviewBackgroundCheckCommand) Decision() agent.BackgroundCheckStatus {
	return c.decision
}

func (c *ReviewBackgroundCheckCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *ReviewBackgroundCheckCommand) setDecision(decision agent.BackgroundCheckStatus) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
