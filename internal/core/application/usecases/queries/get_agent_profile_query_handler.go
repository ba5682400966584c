package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
)

// GetAgentProfileQueryHandler reads one agent's profile with the owning
// account's name.
type GetAgentProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentProfileQueryHandler creates a handler for agent profile reads.
func NewGetAgentProfileQueryHandler(db *gorm.DB) GetAgentProfileQueryHandler {
	return GetAgentProfileQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAgentProfileQueryHandler) Handle(
	ctx context.Context,
	query GetAgentProfileQuery,
) (AgentProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE a.user_id = ?
	`, query.AgentUserID().Bytes()).Row()

	var resp AgentProfileResponse
	var id uuid.UUID

	err := row.Scan(
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
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AgentProfileResponse{}, errs.NewObjectNotFoundError("agent", query.AgentUserID().String())
	}
	if err != nil {
		return AgentProfileResponse{}, err
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AgentProfileResponse{}, err
	}
	resp.AgentID = agentID

	return resp, nil
}
