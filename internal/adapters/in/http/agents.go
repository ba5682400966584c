package http

import (
	"net/http"
	"time"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/application/usecases/queries"
	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

type reviewBackgroundCheckRequest struct {
	Decision string `json:"decision"`
}

type updateAgentProfileRequest struct {
	Bio          string `json:"bio"`
	ProfilePhoto string `json:"profile_photo"`
}

type agentProfileResponse struct {
	AgentID               string    `json:"agent_id"`
	FullName              string    `json:"full_name"`
	Bio                   string    `json:"bio"`
	ProfilePhoto          string    `json:"profile_photo"`
	IsAvailable           bool      `json:"is_available"`
	BackgroundCheckStatus string    `json:"background_check_status"`
	TotalJobs             int       `json:"total_jobs"`
	CompletedJobs         int       `json:"completed_jobs"`
	AverageRating         float64   `json:"average_rating"`
	CreatedAt             time.Time `json:"created_at"`
}

func toAgentProfileResponse(profile queries.AgentProfileResponse) agentProfileResponse {
	return agentProfileResponse{
		AgentID:               profile.AgentID.String(),
		FullName:              profile.FullName,
		Bio:                   profile.Bio,
		ProfilePhoto:          profile.ProfilePhoto,
		IsAvailable:           profile.IsAvailable,
		BackgroundCheckStatus: profile.BackgroundCheckStatus,
		TotalJobs:             profile.TotalJobs,
		CompletedJobs:         profile.CompletedJobs,
		AverageRating:         profile.AverageRating,
		CreatedAt:             profile.CreatedAt,
	}
}

type agentStatsResponse struct {
	AgentID               string  `json:"agent_id"`
	IsAvailable           bool    `json:"is_available"`
	BackgroundCheckStatus string  `json:"background_check_status"`
	TotalJobs             int     `json:"total_jobs"`
	CompletedJobs         int     `json:"completed_jobs"`
	CancelledJobs         int     `json:"cancelled_jobs"`
	CompletionRate        float64 `json:"completion_rate"`
	AverageRating         float64 `json:"average_rating"`
	TotalEarningsCents    int64   `json:"total_earnings_cents"`
}

// SetAvailability handles PUT /api/agents/availability - toggles whether
// the authenticated agent is offered new orders.
func (s *Server) SetAvailability(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	var req setAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetAgentAvailabilityCommand(identity.UserID, req.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SetAgentAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAgentProfile handles GET /api/agents/profile - returns the
// authenticated agent's own profile.
func (s *Server) GetAgentProfile(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	query, err := queries.NewGetAgentProfileQuery(identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.handlers.GetAgentProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentProfileResponse(profile))
}

// UpdateAgentProfile handles PUT /api/agents/profile - updates the
// authenticated agent's bio and profile photo.
func (s *Server) UpdateAgentProfile(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	var req updateAgentProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentProfileCommand(identity.UserID, req.Bio, req.ProfilePhoto)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateAgentProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListAgents handles GET /api/agents - lists every agent profile for
// platform oversight.
func (s *Server) ListAgents(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.RoleAdmin); err != nil {
		return s.encodeError(ctx, err)
	}

	agents, err := s.handlers.ListAgents.Handle(ctx.Request().Context(), queries.NewListAgentsQuery())
	if err != nil {
		return s.encodeError(ctx, err)
	}

	response := make([]agentProfileResponse, len(agents))
	for i, profile := range agents {
		response[i] = toAgentProfileResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentOrders handles GET /api/agents/orders - lists the orders bound
// to the authenticated agent, newest first.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	query, err := queries.NewGetAgentOrdersQuery(identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetAgentOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAgentStats handles GET /api/agents/stats - returns the authenticated
// agent's performance dashboard.
func (s *Server) GetAgentStats(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	query, err := queries.NewGetAgentStatsQuery(identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	stats, err := s.handlers.GetAgentStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, agentStatsResponse{
		AgentID:               stats.AgentID.String(),
		IsAvailable:           stats.IsAvailable,
		BackgroundCheckStatus: stats.BackgroundCheckStatus,
		TotalJobs:             stats.TotalJobs,
		CompletedJobs:         stats.CompletedJobs,
		CancelledJobs:         stats.CancelledJobs,
		CompletionRate:        stats.CompletionRate,
		AverageRating:         stats.AverageRating,
		TotalEarningsCents:    stats.TotalEarningsCents,
	})
}

// ReviewBackgroundCheck handles POST /api/agents/:agentID/background-check -
// records an admin's vetting decision for an agent.
func (s *Server) ReviewBackgroundCheck(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.RoleAdmin); err != nil {
		return s.encodeError(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req reviewBackgroundCheckRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	decision, err := agent.BackgroundCheckStatusFromString(req.Decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReviewBackgroundCheckCommand(agentID, decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ReviewBackgroundCheck.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
