package queries

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)

	// ErrOrderAccessDenied is returned when the requester is neither the
	// order's customer, its assigned agent, nor an administrator.
	ErrOrderAccessDenied = errors.New("order is not visible to this requester")
)

// GetOrderQuery retrieves one order in full detail. Visibility is limited
// to the order's customer, the agent working it, and administrators.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	requesterID   kernel.UUID
	requesterRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID, requesterID kernel.UUID, requesterRole user.Role) (GetOrderQuery, error) {
	q := GetOrderQuery{
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setRequesterID(requesterID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the requesting user's identifier.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the requesting user's role.
func (q GetOrderQuery) RequesterRole() user.Role {
	return q.requesterRole
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	q.requesterID = requesterID
	return nil
}

// OrderDetailResponse is the full read model for a single order.
type OrderDetailResponse struct {
	ID                   kernel.UUID
	Number               string
	ServiceID            kernel.UUID
	ServiceName          string
	Description          string
	PickupAddress        string
	DeliveryAddress      string
	SpecialInstructions  string
	Status               string
	PaymentConfirmed     bool
	ServiceFeeCents      int64
	AdditionalCostsCents int64
	TotalAmountCents     int64
	CompletionNotes      string
	CancellationReason   string
	CreatedAt            time.Time
	AcceptedAt           *time.Time
	StartedAt            *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
}
