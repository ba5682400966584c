package commands

import (
	"context"
	"errors"
	"time"

	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/ports"
)

var (
	// ErrAssignmentConflict is returned when another agent claimed the
	// order first, or the claiming agent was concurrently assigned
	// elsewhere.
	ErrAssignmentConflict = errors.New("order was claimed by another agent")

	// ErrAgentNotApproved is returned when the claiming agent has not
	// passed the background check.
	ErrAgentNotApproved = errors.New("agent background check is not approved")
)

// AcceptOrderCommandHandler arbitrates concurrent claims on an order.
// The in-memory checks reject obviously stale claims early; the guarded
// repository updates are what actually decide the race. Both the order row
// and the agent row are compare-and-swapped inside one transaction, so at
// most one agent ever holds an order and an agent never holds two orders
// at once.
type AcceptOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order claims.
func NewAcceptOrderCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes an agent's claim on an order.
// Returns ErrAssignmentConflict when a concurrent claim won, order.ErrPaymentNotConfirmed
// for unpaid orders and ErrAgentNotApproved or agent.ErrAgentUnavailable for
// agents not eligible to claim.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	agentRepo := uow.AgentRepository()

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	prevStatus := claimed.Status()

	claimant, err := agentRepo.GetByUserID(ctx, cmd.AgentUserID())
	if err != nil {
		return err
	}
	if claimant.BackgroundCheckStatus() != agent.BackgroundCheckApproved {
		return ErrAgentNotApproved
	}

	now := time.Now().UTC()
	if err = claimed.Accept(claimant.ID(), now); err != nil {
		return err
	}
	if err = claimant.MarkBusy(); err != nil {
		return err
	}

	if err = orderRepo.UpdateFrom(ctx, claimed, prevStatus); err != nil {
		if errors.Is(err, ports.ErrConcurrentUpdate) {
			return ErrAssignmentConflict
		}
		return err
	}

	if err = agentRepo.UpdateIfAvailable(ctx, claimant); err != nil {
		if errors.Is(err, ports.ErrConcurrentUpdate) {
			return ErrAssignmentConflict
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAccepted(ctx, claimed)
	return nil
}
