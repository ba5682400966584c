package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order in full detail, enforcing that only
// the order's customer, its assigned agent, or an administrator sees it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The agent check compares against the user
// account owning the assigned agent profile, not the profile id itself.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_id,
			a.user_id,
			o.service_id,
			s.name,
			o.description,
			o.pickup_address,
			o.delivery_address,
			o.special_instructions,
			o.status,
			o.payment_confirmed,
			o.service_fee_cents,
			o.additional_costs_cents,
			o.total_amount_cents,
			o.completion_notes,
			o.cancellation_reason,
			o.created_at,
			o.accepted_at,
			o.started_at,
			o.completed_at,
			o.cancelled_at
		FROM orders o
		JOIN services s ON s.id = o.service_id
		LEFT JOIN agents a ON a.id = o.agent_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp OrderDetailResponse
	var id, customerID, serviceID uuid.UUID
	var agentUserID *uuid.UUID

	err := row.Scan(
		&id,
		&resp.Number,
		&customerID,
		&agentUserID,
		&serviceID,
		&resp.ServiceName,
		&resp.Description,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.SpecialInstructions,
		&resp.Status,
		&resp.PaymentConfirmed,
		&resp.ServiceFeeCents,
		&resp.AdditionalCostsCents,
		&resp.TotalAmountCents,
		&resp.CompletionNotes,
		&resp.CancellationReason,
		&resp.CreatedAt,
		&resp.AcceptedAt,
		&resp.StartedAt,
		&resp.CompletedAt,
		&resp.CancelledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderDetailResponse{}, err
	}

	if err = h.checkAccess(query, customerID, agentUserID); err != nil {
		return OrderDetailResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.ID = orderID

	svcID, err := kernel.UUIDFromBytes(serviceID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.ServiceID = svcID

	return resp, nil
}

// checkAccess enforces order visibility for the requester.
func (h GetOrderQueryHandler) checkAccess(query GetOrderQuery, customerID uuid.UUID, agentUserID *uuid.UUID) error {
	switch query.RequesterRole() {
	case user.RoleAdmin:
		return nil
	case user.RoleCustomer:
		if customerID == query.RequesterID().Bytes() {
			return nil
		}
	case user.RoleAgent:
		if agentUserID != nil && *agentUserID == query.RequesterID().Bytes() {
			return nil
		}
	}

	return ErrOrderAccessDenied
}
