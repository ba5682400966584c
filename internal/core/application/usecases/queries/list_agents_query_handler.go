package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofer/internal/core/domain/model/kernel"
)

// ListAgentsQueryHandler reads the full agent roster, newest first.
type ListAgentsQueryHandler struct {
	db *gorm.DB
}

// NewListAgentsQueryHandler creates a handler for the agent roster.
func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListAgentsQueryHandler) Handle(
	ctx context.Context,
	query ListAgentsQuery,
) ([]AgentProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			u.first_name || ' ' || u.last_name,
			a.bio,
			a.profile_photo,
			a.is_available,
			a.background_check_status,
			a.total_jobs,
			a.completed_jobs,
			a.average_rating,
			a.created_at
		FROM agents a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AgentProfileResponse, 0)

	for rows.Next() {
		var resp AgentProfileResponse
		var id uuid.UUID

		if err := rows.Scan(
			&id,
			&resp.FullName,
			&resp.Bio,
			&resp.ProfilePhoto,
			&resp.IsAvailable,
			&resp.BackgroundCheckStatus,
			&resp.TotalJobs,
			&resp.CompletedJobs,
			&resp.AverageRating,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		agentID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.AgentID = agentID

		agents = append(agents, resp)
	}

	return agents, rows.Err()
}
