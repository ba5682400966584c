package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
)

// GetAvailableOrdersQueryHandler reads the feed of claimable orders.
// Only payment-confirmed pending orders with no agent appear: the same
// predicate the accept transaction re-checks under its row guard.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the claimable
// order feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.service_id,
			s.name,
			o.description,
			o.pickup_address,
			o.delivery_address,
			o.status,
			o.service_fee_cents,
			o.total_amount_cents,
			o.created_at
		FROM orders o
		JOIN services s ON s.id = o.service_id
		WHERE o.status = ?
		  AND o.agent_id IS NULL
		  AND o.payment_confirmed
		ORDER BY o.created_at DESC
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}

// scanOrderResponses maps order listing rows into the shared read model.
func scanOrderResponses(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, serviceID uuid.UUID

		if err := rows.Scan(
			&id,
			&resp.Number,
			&serviceID,
			&resp.ServiceName,
			&resp.Description,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.Status,
			&resp.ServiceFeeCents,
			&resp.TotalAmountCents,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = orderID

		svcID, err := kernel.UUIDFromBytes(serviceID[:])
		if err != nil {
			return nil, err
		}
		resp.ServiceID = svcID

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
