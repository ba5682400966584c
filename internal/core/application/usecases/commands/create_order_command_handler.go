package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/domain/model/payment"
	"gofer/internal/core/ports"
	"gofer/internal/pkg/errs"
)

var (
	ErrServiceNotOrderable = errors.New("service is not orderable")

	// ErrOrderNumberExhausted is returned when number generation keeps
	// colliding with existing orders.
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
)

const orderNumberAttempts = 10

// CreateOrderResult carries what the customer's client needs to finish
// checkout: the provider's secret for completing the payment intent.
type CreateOrderResult struct {
	ClientSecret string
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Snapshots the catalog price into the order, generates a unique public
// order number and opens a payment intent with the provider inside the same
// transaction: the order stays invisible to agents until the provider
// confirms the payment through the webhook.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	gateway ports.PaymentGateway,
	notifier Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// The payment intent is opened but not decided here: the order and its
// pending payment are persisted together, and the customer's client
// completes the intent with the returned secret. Provider connectivity
// errors roll the whole transaction back.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.ServiceRepository().GetBySlug(ctx, cmd.ServiceSlug())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return CreateOrderResult{}, ErrServiceNotOrderable
		}
		return CreateOrderResult{}, err
	}
	if !svc.IsOrderable() {
		return CreateOrderResult{}, ErrServiceNotOrderable
	}

	customer, err := uow.UserRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	number, err := h.generateNumber(ctx, orderRepo)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), number, customer.ID(), svc.ID(),
		cmd.Description(), cmd.Details(), svc.BasePrice(), now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if customer.BillingRef() == "" {
		billingRef, err := h.gateway.CreateCustomer(ctx, customer.Email(), customer.FullName())
		if err != nil {
			return CreateOrderResult{}, fmt.Errorf("create billing profile: %w", err)
		}
		customer.AttachBillingRef(billingRef)
		if err = uow.UserRepository().Update(ctx, customer); err != nil {
			return CreateOrderResult{}, err
		}
	}

	charge, err := h.gateway.Authorize(ctx, customer.BillingRef(), newOrder.ServiceFee(),
		"Order "+newOrder.Number().String())
	if err != nil {
		return CreateOrderResult{}, fmt.Errorf("authorize payment: %w", err)
	}

	pmt, err := payment.NewPayment(kernel.NewUUID(), newOrder.ID(), newOrder.ServiceFee(),
		charge.IntentRef, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, pmt); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.notifier.OrderCreated(ctx, newOrder)
	return CreateOrderResult{ClientSecret: charge.ClientSecret}, nil
}

// generateNumber rolls public order numbers until one is free.
func (h CreateOrderCommandHandler) generateNumber(ctx context.Context, repo ports.OrderRepository) (order.Number, error) {
	for range orderNumberAttempts {
		number := order.GenerateNumber()
		exists, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return order.Number{}, err
		}
		if !exists {
			return number, nil
		}
	}
	return order.Number{}, ErrOrderNumberExhausted
}
