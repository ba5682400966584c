// Package ports defines repository and gateway interfaces for the errand
// platform domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
)

// ErrConcurrentUpdate is returned by guarded repository updates when the
// row no longer matches the expected state, meaning another transaction won
// the race. Callers must roll back and surface a conflict.
var ErrConcurrentUpdate = errors.New("aggregate was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally. Use UpdateFrom for status transitions that must be
	// protected against concurrent writers.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFrom persists changes to an existing order aggregate only if
	// the stored row is still in the given status. For transitions out of
	// Pending the guard additionally requires that no agent is bound yet,
	// which is what makes concurrent accepts of the same order resolve to
	// exactly one winner. Returns ErrConcurrentUpdate when the guard does
	// not match.
	UpdateFrom(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its public order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// ExistsByNumber reports whether an order with the given public number
	// already exists. Used to re-roll generated numbers on collision.
	ExistsByNumber(ctx context.Context, number order.Number) (bool, error)
}
