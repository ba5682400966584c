package commands

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrServiceSlugIsRequired = errors.New("service slug is required")
	ErrDescriptionIsRequired = errors.New("description is required")
)

// CreateOrderCommand represents a customer's request to place a new errand
// order for a catalog service.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	serviceSlug string
	description string
	details     order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both IDs are valid, the service slug and description are
// not empty. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	serviceSlug string,
	description string,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setServiceSlug(serviceSlug),
		cmd.setDescription(description),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer's user ID.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceSlug returns the requested catalog service's slug.
func (c CreateOrderCommand) ServiceSlug() string {
	return c.serviceSlug
}

// Description returns the task description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Details returns the optional request attributes.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setServiceSlug(slug string) error {
	if slug == "" {
		return ErrServiceSlugIsRequired
	}

	c.serviceSlug = slug
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
