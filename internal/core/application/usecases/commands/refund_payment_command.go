package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var (
	ErrRefundPaymentCommandIsNotConstructed = errors.New(
		"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
	)

	// ErrRefundAmountIsInvalid is returned for a negative refund amount.
	ErrRefundAmountIsInvalid = errors.New("refund amount must not be negative")
)

// RefundPaymentCommand represents an administrator's request to reverse the
// captured charge on an order without cancelling the order itself. A zero
// amount requests a full refund.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	amountCents int64
	reason      string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund an order's charge.
func NewRefundPaymentCommand(orderID kernel.UUID, amountCents int64, reason string) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmountCents(amountCents),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// OrderID returns the refunded order's identifier.
func (c RefundPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AmountCents returns the requested refund amount, zero for a full refund.
func (c RefundPaymentCommand) AmountCents() int64 {
	return c.amountCents
}

// Reason returns the recorded refund reason, or "".
func (c RefundPaymentCommand) Reason() string {
	return c.reason
}

func (c *RefundPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundPaymentCommand) setAmountCents(amountCents int64) error {
	if amountCents < 0 {
		return ErrRefundAmountIsInvalid
	}

	c.amountCents = amountCents
	return nil
}
