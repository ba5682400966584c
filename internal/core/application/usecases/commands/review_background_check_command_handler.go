package commands

import (
	"context"
	"time"
)

// ReviewBackgroundCheckCommandHandler records an administrator's vetting
// decision on an agent profile.
type ReviewBackgroundCheckCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewReviewBackgroundCheckCommandHandler creates a handler for vetting decisions.
func NewReviewBackgroundCheckCommandHandler(uowFactory AgentUoWFactory) ReviewBackgroundCheckCommandHandler {
	return ReviewBackgroundCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vetting decision.
func (h ReviewBackgroundCheckCommandHandler) Handle(ctx context.Context, cmd ReviewBackgroundCheckCommand) error {
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

	profile, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = profile.ReviewBackgroundCheck(cmd.Decision(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.AgentRepository().Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
