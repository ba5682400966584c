// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the orders agents can claim: pending,
// unassigned and payment-confirmed, newest first.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the claimable order feed.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model shared by the order listing queries.
type OrderResponse struct {
	ID               kernel.UUID
	Number           string
	ServiceID        kernel.UUID
	ServiceName      string
	Description      string
	PickupAddress    string
	DeliveryAddress  string
	Status           string
	ServiceFeeCents  int64
	TotalAmountCents int64
	CreatedAt        time.Time
}
