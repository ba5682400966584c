// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/ports"
)

// Notifier publishes order lifecycle notifications to the customer.
// Implementations must never fail the calling command: delivery problems are
// recorded and retried in the background.
type Notifier interface {
	OrderCreated(ctx context.Context, aggregate *order.Order)
	OrderAccepted(ctx context.Context, aggregate *order.Order)
	OrderStarted(ctx context.Context, aggregate *order.Order)
	OrderCompleted(ctx context.Context, aggregate *order.Order)
	OrderCancelled(ctx context.Context, aggregate *order.Order)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ServiceRepoFactory provides access to the catalog repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// RegisterUoW coordinates account creation with the optional agent
	// profile created alongside it.
	RegisterUoW interface {
		TxManager
		UserRepoFactory
		AgentRepoFactory
	}

	// RegisterUoWFactory creates new registration unit of work instances.
	RegisterUoWFactory interface {
		Create() RegisterUoW
	}

	// CreateOrderUoW coordinates order creation: catalog lookup, customer
	// billing profile, the order row and its payment record.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		ServiceRepoFactory
		PaymentRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AssignmentUoW coordinates changes between an order and the agent
	// bound to it.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CancelOrderUoW coordinates cancellation: the order, the agent to
	// release and the payment to refund.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		PaymentRepoFactory
	}

	// CancelOrderUoWFactory creates new cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// PaymentUoW coordinates provider payment decisions with the order
	// they confirm.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
