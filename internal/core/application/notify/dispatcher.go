// Package notify publishes order lifecycle SMS notifications. Every message
// is persisted before the send attempt so a provider outage degrades into a
// retry, never a lost notification.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/notification"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/ports"
)

const sendTimeout = 10 * time.Second

// UoW is the transaction boundary the dispatcher needs: the notification
// row it writes and the user it resolves the recipient phone from.
type UoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	NotificationRepository() ports.NotificationRepository
	UserRepository() ports.UserRepository
}

// UoWFactory creates new dispatcher unit of work instances.
type UoWFactory interface {
	Create() UoW
}

// Dispatcher records and sends order lifecycle notifications. It is fire and
// forget from the caller's perspective: failures are logged and left for the
// retry job, never propagated to the order operation that triggered them.
type Dispatcher struct {
	uowFactory UoWFactory
	gateway    ports.MessagingGateway
	logger     *slog.Logger
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(uowFactory UoWFactory, gateway ports.MessagingGateway, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger,
	}
}

// OrderCreated notifies the customer that their order was placed.
func (d *Dispatcher) OrderCreated(ctx context.Context, aggregate *order.Order) {
	d.publish(ctx, aggregate,
		fmt.Sprintf("Your order %s has been placed! We'll let you know when an agent picks it up.",
			aggregate.Number()))
}

// OrderAccepted notifies the customer that an agent claimed their order.
func (d *Dispatcher) OrderAccepted(ctx context.Context, aggregate *order.Order) {
	d.publish(ctx, aggregate,
		fmt.Sprintf("Good news! An agent has accepted your order %s.", aggregate.Number()))
}

// OrderStarted notifies the customer that work has begun.
func (d *Dispatcher) OrderStarted(ctx context.Context, aggregate *order.Order) {
	d.publish(ctx, aggregate,
		fmt.Sprintf("Your agent has started working on order %s.", aggregate.Number()))
}

// OrderCompleted notifies the customer that the order is done.
func (d *Dispatcher) OrderCompleted(ctx context.Context, aggregate *order.Order) {
	d.publish(ctx, aggregate,
		fmt.Sprintf("Your order %s is complete. Total charged: %s.",
			aggregate.Number(), aggregate.TotalAmount()))
}

// OrderCancelled notifies the customer that the order was cancelled.
func (d *Dispatcher) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	d.publish(ctx, aggregate,
		fmt.Sprintf("Your order %s has been cancelled.", aggregate.Number()))
}

// publish persists a pending notification for the order's customer, then
// attempts delivery. All failures are swallowed after logging.
func (d *Dispatcher) publish(ctx context.Context, aggregate *order.Order, body string) {
	orderID := aggregate.ID()

	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		d.logger.Error("notification begin failed", "order", orderID.String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		d.logger.Error("notification recipient lookup failed", "order", orderID.String(), "error", err)
		return
	}
	if customer.Phone() == "" {
		d.logger.Info("customer has no phone, skipping notification", "order", orderID.String())
		return
	}

	msg, err := notification.NewNotification(
		kernel.NewUUID(), customer.ID(), &orderID,
		customer.Phone(), body, time.Now().UTC(),
	)
	if err != nil {
		d.logger.Error("notification build failed", "order", orderID.String(), "error", err)
		return
	}

	if err = uow.NotificationRepository().Add(ctx, msg); err != nil {
		d.logger.Error("notification persist failed", "order", orderID.String(), "error", err)
		return
	}

	d.deliver(ctx, msg)

	if err = uow.NotificationRepository().Update(ctx, msg); err != nil {
		d.logger.Error("notification outcome persist failed", "order", orderID.String(), "error", err)
		return
	}
	if err = uow.Commit(ctx); err != nil {
		d.logger.Error("notification commit failed", "order", orderID.String(), "error", err)
	}
}

// RetryFailed re-attempts delivery of failed notifications still within the
// retry budget. Returns the number of notifications that went out; errors
// loading or persisting individual rows are logged and skipped so one bad
// row cannot stall the rest.
func (d *Dispatcher) RetryFailed(ctx context.Context, maxRetries int) (int, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	retryable, err := uow.NotificationRepository().GetAllRetryable(ctx, maxRetries)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, msg := range retryable {
		d.deliver(ctx, msg)
		if msg.Status() == notification.StatusSent {
			sent++
		}

		if err = uow.NotificationRepository().Update(ctx, msg); err != nil {
			d.logger.Error("notification retry persist failed",
				"notification", msg.ID().String(), "error", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, nil
}

// deliver attempts one provider send with a bounded timeout and records the
// outcome on the notification.
func (d *Dispatcher) deliver(ctx context.Context, msg *notification.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	externalID, err := d.gateway.Send(sendCtx, msg.Recipient(), msg.Body())
	if err != nil {
		msg.MarkFailed(err.Error())
		d.logger.Warn("notification send failed, queued for retry",
			"notification", msg.ID().String(), "error", err)
		return
	}

	if err = msg.MarkSent(externalID, time.Now().UTC()); err != nil {
		msg.MarkFailed(err.Error())
	}
}
