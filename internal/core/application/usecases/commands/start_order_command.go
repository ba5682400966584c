package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents an agent reporting that work on an accepted
// order has begun.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	agentUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to begin work on an order.
func NewStartOrderCommand(orderID, agentUserID kernel.UUID) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentUserID(agentUserID),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentUserID returns the reporting agent's user account identifier.
func (c StartOrderCommand) AgentUserID() kernel.UUID {
	return c.agentUserID
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	c.agentUserID = agentUserID
	return nil
}
