package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/payment"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"
	"gofer/internal/pkg/errs"
)

// ErrNotOrderOwner is returned when someone other than the ordering
// customer or an administrator tries to cancel an order.
var ErrNotOrderOwner = errors.New("order belongs to a different customer")

// CancelOrderCommandHandler cancels an order from any non-terminal status.
// A bound agent is released and credited with the cancellation; a captured
// charge is refunded through the payment provider.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   Notifier
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(
	uowFactory CancelOrderUoWFactory,
	gateway ports.PaymentGateway,
	notifier Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. Customers may cancel only
// their own orders; administrators may cancel any order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	prevStatus := cancelled.Status()

	if cmd.RequestedByRole() != user.RoleAdmin && !cancelled.CustomerID().IsEqual(cmd.RequestedBy()) {
		return ErrNotOrderOwner
	}

	now := time.Now().UTC()
	if err = cancelled.Cancel(cmd.Reason(), now); err != nil {
		return err
	}

	if cancelled.AgentID() != nil {
		released, err := uow.AgentRepository().Get(ctx, *cancelled.AgentID())
		if err != nil {
			return err
		}
		if err = released.RecordCancellation(); err != nil {
			return err
		}
		if err = uow.AgentRepository().Update(ctx, released); err != nil {
			return err
		}
	}

	if err = h.refundCharge(ctx, uow, cancelled.ID(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateFrom(ctx, cancelled, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderCancelled(ctx, cancelled)
	return nil
}

// refundCharge reverses the order's charge in full if one was captured.
// Orders without a payment record or with an uncaptured charge need no
// refund. The cancellation reason is recorded as the refund reason.
func (h CancelOrderCommandHandler) refundCharge(ctx context.Context, uow CancelOrderUoW, orderID kernel.UUID, reason string, now time.Time) error {
	pmt, err := uow.PaymentRepository().GetByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if pmt.Status() != payment.StatusSucceeded {
		return nil
	}

	if _, err = h.gateway.Reverse(ctx, pmt.ChargeRef(), pmt.Amount()); err != nil {
		return fmt.Errorf("reverse charge: %w", err)
	}
	if err = pmt.MarkRefunded(kernel.Zero(), reason, now); err != nil {
		return err
	}
	return uow.PaymentRepository().Update(ctx, pmt)
}
