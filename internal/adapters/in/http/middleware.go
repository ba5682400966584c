package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// identityContextKey stores the authenticated ports.Identity in the
// echo context for the duration of a request.
const identityContextKey = "gofer.identity"

const bearerPrefix = "Bearer "

// Authenticate verifies the bearer token and stores the identity it
// carries in the request context. Requests without a valid token are
// rejected before reaching the handler.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		identity, err := s.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return s.encodeError(ctx, err)
		}

		ctx.Set(identityContextKey, identity)
		return next(ctx)
	}
}
