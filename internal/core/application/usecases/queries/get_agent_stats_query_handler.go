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

// GetAgentStatsQueryHandler reads an agent's performance dashboard.
type GetAgentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentStatsQueryHandler creates a handler for agent dashboards.
func NewGetAgentStatsQueryHandler(db *gorm.DB) GetAgentStatsQueryHandler {
	return GetAgentStatsQueryHandler{db: db}
}

// Handle executes the query. The completion rate is derived here rather
// than stored.
func (h GetAgentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentStatsQuery,
) (AgentStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentStatsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			is_available,
			background_check_status,
			total_jobs,
			completed_jobs,
			cancelled_jobs,
			average_rating,
			total_earnings_cents
		FROM agents
		WHERE user_id = ?
	`, query.AgentUserID().Bytes()).Row()

	var resp AgentStatsResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&resp.IsAvailable,
		&resp.BackgroundCheckStatus,
		&resp.TotalJobs,
		&resp.CompletedJobs,
		&resp.CancelledJobs,
		&resp.AverageRating,
		&resp.TotalEarningsCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AgentStatsResponse{}, errs.NewObjectNotFoundError("agent", query.AgentUserID().String())
	}
	if err != nil {
		return AgentStatsResponse{}, err
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AgentStatsResponse{}, err
	}
	resp.AgentID = agentID

	if resp.TotalJobs > 0 {
		resp.CompletionRate = float64(resp.CompletedJobs) / float64(resp.TotalJobs) * 100
	}

	return resp, nil
}
