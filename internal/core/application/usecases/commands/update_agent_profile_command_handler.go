package commands

import (
	"context"
)

// UpdateAgentProfileCommandHandler applies an agent's profile edits.
type UpdateAgentProfileCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentProfileCommandHandler creates a handler for profile edits.
func NewUpdateAgentProfileCommandHandler(uowFactory AgentUoWFactory) UpdateAgentProfileCommandHandler {
	return UpdateAgentProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile edit.
func (h UpdateAgentProfileCommandHandler) Handle(ctx context.Context, cmd UpdateAgentProfileCommand) error {
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

	profile.UpdateProfile(cmd.Bio(), cmd.ProfilePhoto())

	if err = uow.AgentRepository().Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
