package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order, by the
// customer who placed it or by an administrator.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	requestedBy     kernel.UUID
	requestedByRole user.Role
	reason          string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The reason is
// optional.
func NewCancelOrderCommand(
	orderID, requestedBy kernel.UUID,
	requestedByRole user.Role,
	reason string,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy, requestedByRole),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the requesting user's identifier.
func (c CancelOrderCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

// RequestedByRole returns the requesting user's role.
func (c CancelOrderCommand) RequestedByRole() user.Role {
	return c.requestedByRole
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setRequestedBy(requestedBy kernel.UUID, role user.Role) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	c.requestedByRole = role
	return nil
}
