package http

import (
	"net/http"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// Register handles POST /api/auth/register - creates a new account and
// returns a session token.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Email, req.Password, req.FirstName, req.LastName, req.Phone, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, authResponse{
		UserID: result.UserID.String(),
		Role:   result.Role.String(),
		Token:  result.Token,
	})
}

// Login handles POST /api/auth/login - exchanges credentials for a
// session token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse{
		UserID: result.UserID.String(),
		Role:   result.Role.String(),
		Token:  result.Token,
	})
}
