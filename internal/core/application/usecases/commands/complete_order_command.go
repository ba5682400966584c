package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrAdditionalCostsAreInvalid = errors.New("additional costs must not be negative")
)

// CompleteOrderCommand represents an agent reporting finished work: the
// completion notes, documentation photos and any pass-through costs
// incurred on the customer's behalf.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	agentUserID          kernel.UUID
	notes                string
	completionPhotos     []string
	receiptPhotos        []string
	additionalCostsCents int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to report finished work.
func NewCompleteOrderCommand(
	orderID, agentUserID kernel.UUID,
	notes string,
	completionPhotos, receiptPhotos []string,
	additionalCostsCents int64,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		notes:            notes,
		completionPhotos: completionPhotos,
		receiptPhotos:    receiptPhotos,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentUserID(agentUserID),
		cmd.setAdditionalCosts(additionalCostsCents),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentUserID returns the reporting agent's user account identifier.
func (c CompleteOrderCommand) AgentUserID() kernel.UUID {
	return c.agentUserID
}

// Notes returns the completion notes.
func (c CompleteOrderCommand) Notes() string {
	return c.notes
}

// CompletionPhotos returns URLs of photos documenting the work.
func (c CompleteOrderCommand) CompletionPhotos() []string {
	return c.completionPhotos
}

// ReceiptPhotos returns URLs of receipts for additional costs.
func (c CompleteOrderCommand) ReceiptPhotos() []string {
	return c.receiptPhotos
}

// AdditionalCostsCents returns the pass-through costs in minor units.
func (c CompleteOrderCommand) AdditionalCostsCents() int64 {
	return c.additionalCostsCents
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setAgentUserID(agentUserID kernel.UUID) error {
	if err := agentUserID.Validate(); err != nil {
		return err
	}

	c.agentUserID = agentUserID
	return nil
}

func (c *CompleteOrderCommand) setAdditionalCosts(cents int64) error {
	if cents < 0 {
		return ErrAdditionalCostsAreInvalid
	}

	c.additionalCostsCents = cents
	return nil
}
