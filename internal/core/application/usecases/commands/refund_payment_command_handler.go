package commands

import (
	"context"
	"fmt"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/ports"
)

// RefundPaymentCommandHandler reverses the captured charge on an order.
// Used by administrators resolving disputes; cancellation refunds happen
// through CancelOrderCommandHandler instead.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewRefundPaymentCommandHandler creates a handler for manual refunds.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory, gateway ports.PaymentGateway) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the refund command. Fails with payment.ErrNoChargeRecorded
// or payment.ErrInvalidStatusTransition when there is nothing to reverse.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	pmt, err := uow.PaymentRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	amount, err := kernel.NewMoney(cmd.AmountCents())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = pmt.MarkRefunded(amount, cmd.Reason(), now); err != nil {
		return err
	}

	if _, err = h.gateway.Reverse(ctx, pmt.ChargeRef(), pmt.RefundAmount()); err != nil {
		return fmt.Errorf("reverse charge: %w", err)
	}

	if err = uow.PaymentRepository().Update(ctx, pmt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
