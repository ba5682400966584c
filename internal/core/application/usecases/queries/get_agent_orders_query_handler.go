package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler reads the orders bound to one agent.
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent order listings.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
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
		JOIN agents a ON a.id = o.agent_id
		WHERE a.user_id = ?
		ORDER BY o.created_at DESC
	`, query.AgentUserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}
