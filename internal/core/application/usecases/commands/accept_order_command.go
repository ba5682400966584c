package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents an agent's claim on a pending order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	agentUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for an agent to claim an order.
func NewAcceptOrderCommand(orderID, agentUserID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentUserID(agentUserID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the claimed order's identifier.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentUserID returns the claiming agent's user account identifier.
func (c AcceptOrderCommand) AgentUserID() kernel.UUID {
	return c.agentUserID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	c.agentUserID = agentUserID
	return nil
}
