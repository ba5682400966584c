package commands

import (
	"context"
	"fmt"
	"time"

	"gofer/internal/core/ports"
)

// Webhook event names reported by the payment provider.
const (
	eventPaymentSucceeded = "payment_intent.succeeded"
	eventPaymentFailed    = "payment_intent.payment_failed"
)

// Intent statuses observed when syncing pending payments directly.
const (
	intentStatusSucceeded = "succeeded"
	intentStatusCanceled  = "canceled"
)

// ReconcilePaymentCommandHandler applies payment provider webhook decisions
// to payment records. A success confirms the order's payment, making it
// visible to agents; a failure is recorded on the payment only — the order
// stays pending and unconfirmed, awaiting a retried charge or cancellation.
type ReconcilePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewReconcilePaymentCommandHandler creates a handler for provider webhooks.
func NewReconcilePaymentCommandHandler(uowFactory PaymentUoWFactory, gateway ports.PaymentGateway) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle verifies and applies a provider callback. Event types other than
// payment success/failure are acknowledged without state changes.
func (h ReconcilePaymentCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := h.gateway.VerifyWebhook(cmd.Payload(), cmd.Signature())
	if err != nil {
		return fmt.Errorf("verify webhook: %w", err)
	}

	if event.Type != eventPaymentSucceeded && event.Type != eventPaymentFailed {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pmt, err := uow.PaymentRepository().GetByExternalRef(ctx, event.IntentRef)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch event.Type {
	case eventPaymentSucceeded:
		if err = pmt.MarkSucceeded(event.ChargeRef, event.MethodType, event.Last4, now); err != nil {
			return err
		}

		confirmed, err := uow.OrderRepository().Get(ctx, pmt.OrderID())
		if err != nil {
			return err
		}
		confirmed.ConfirmPayment()
		if err = uow.OrderRepository().Update(ctx, confirmed); err != nil {
			return err
		}

	case eventPaymentFailed:
		if err = pmt.MarkFailed(event.FailureReason, now); err != nil {
			return err
		}
	}

	if err = uow.PaymentRepository().Update(ctx, pmt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SyncPending reconciles payments that stayed pending longer than olderThan
// by asking the provider for each intent's current state. Covers webhooks
// that never arrived. Returns how many payments left the pending state.
func (h ReconcilePaymentCommandHandler) SyncPending(ctx context.Context, olderThan time.Duration) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-olderThan)
	stale, err := uow.PaymentRepository().FindStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, pmt := range stale {
		intent, err := h.gateway.Retrieve(ctx, pmt.ExternalRef())
		if err != nil {
			return 0, fmt.Errorf("retrieve intent %s: %w", pmt.ExternalRef(), err)
		}

		now := time.Now().UTC()
		switch intent.Status {
		case intentStatusSucceeded:
			if err = pmt.MarkSucceeded(intent.ChargeRef, intent.MethodType, intent.Last4, now); err != nil {
				return 0, err
			}

			confirmed, err := uow.OrderRepository().Get(ctx, pmt.OrderID())
			if err != nil {
				return 0, err
			}
			confirmed.ConfirmPayment()
			if err = uow.OrderRepository().Update(ctx, confirmed); err != nil {
				return 0, err
			}

		case intentStatusCanceled:
			if err = pmt.MarkFailed(intent.FailureReason, now); err != nil {
				return 0, err
			}

		default:
			// Still awaiting the customer; leave it pending.
			continue
		}

		if err = uow.PaymentRepository().Update(ctx, pmt); err != nil {
			return 0, err
		}
		synced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return synced, nil
}
