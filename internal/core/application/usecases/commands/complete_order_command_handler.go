package commands

import (
	"context"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler finalizes an order: records the completion
// report on the order, credits the agent with the service fee and releases
// the agent for new assignments. Order and agent are updated in one
// transaction.
type CompleteOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Only the agent bound at
// acceptance may complete the order. The agent earns the service fee;
// additional costs pass through to the customer's total.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	additionalCosts, err := kernel.NewMoney(cmd.AdditionalCostsCents())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	completed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	prevStatus := completed.Status()

	executor, err := agentRepo.GetByUserID(ctx, cmd.AgentUserID())
	if err != nil {
		return err
	}
	if completed.AgentID() == nil || !completed.AgentID().IsEqual(executor.ID()) {
		return ErrNotOrderAgent
	}

	report := order.CompletionReport{
		Notes:            cmd.Notes(),
		CompletionPhotos: cmd.CompletionPhotos(),
		ReceiptPhotos:    cmd.ReceiptPhotos(),
		AdditionalCosts:  additionalCosts,
	}
	if err = completed.Complete(report, time.Now().UTC()); err != nil {
		return err
	}

	if err = executor.RecordCompletion(completed.ServiceFee()); err != nil {
		return err
	}

	if err = orderRepo.UpdateFrom(ctx, completed, prevStatus); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, executor); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderCompleted(ctx, completed)
	return nil
}
