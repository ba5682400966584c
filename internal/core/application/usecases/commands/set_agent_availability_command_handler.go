package commands

import (
	"context"

	"gofer/internal/core/domain/model/agent"
)

// SetAgentAvailabilityCommandHandler toggles an agent's availability flag.
// Only approved agents may go available; going unavailable is always
// allowed.
type SetAgentAvailabilityCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewSetAgentAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetAgentAvailabilityCommandHandler(uowFactory AgentUoWFactory) SetAgentAvailabilityCommandHandler {
	return SetAgentAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
func (h SetAgentAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAgentAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.AgentRepository().GetByUserID(ctx, cmd.AgentUserID())
	if err != nil {
		return err
	}

	if cmd.Available() && profile.BackgroundCheckStatus() != agent.BackgroundCheckApproved {
		return ErrAgentNotApproved
	}

	profile.SetAvailability(cmd.Available())

	if err = uow.AgentRepository().Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
