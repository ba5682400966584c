package commands

import (
	"context"
	"errors"
	"time"
)

// ErrNotOrderAgent is returned when an agent tries to act on an order
// bound to a different agent.
var ErrNotOrderAgent = errors.New("order is bound to a different agent")

// StartOrderCommandHandler transitions an accepted order into execution.
type StartOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
}

// NewStartOrderCommandHandler creates a handler for starting orders.
func NewStartOrderCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start command. Only the agent bound at acceptance may
// start the order.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	started, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	prevStatus := started.Status()

	executor, err := uow.AgentRepository().GetByUserID(ctx, cmd.AgentUserID())
	if err != nil {
		return err
	}
	if started.AgentID() == nil || !started.AgentID().IsEqual(executor.ID()) {
		return ErrNotOrderAgent
	}

	if err = started.Start(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateFrom(ctx, started, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStarted(ctx, started)
	return nil
}
