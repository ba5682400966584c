package http

import (
	"errors"
	"net/http"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/application/usecases/queries"
	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"
	"gofer/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errAuthenticationRequired = errors.New("authentication required")
	errRoleNotAllowed         = errors.New("role is not allowed to perform this action")
)

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	RegisterUser          commands.RegisterUserCommandHandler
	Login                 commands.LoginCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	AcceptOrder           commands.AcceptOrderCommandHandler
	StartOrder            commands.StartOrderCommandHandler
	CompleteOrder         commands.CompleteOrderCommandHandler
	SetAgentAvailability  commands.SetAgentAvailabilityCommandHandler
	UpdateAgentProfile    commands.UpdateAgentProfileCommandHandler
	ReviewBackgroundCheck commands.ReviewBackgroundCheckCommandHandler
	ReconcilePayment      commands.ReconcilePaymentCommandHandler
	RefundPayment         commands.RefundPaymentCommandHandler

	GetCatalog         queries.GetCatalogQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetCustomerOrders  queries.GetCustomerOrdersQueryHandler
	GetAgentOrders     queries.GetAgentOrdersQueryHandler
	GetAgentStats      queries.GetAgentStatsQueryHandler
	GetAgentProfile    queries.GetAgentProfileQueryHandler
	ListAgents         queries.ListAgentsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
// Authentication is a route middleware; authorization is an explicit
// role check at the top of each protected handler.
type Server struct {
	handlers Handlers
	tokens   ports.TokenIssuer
}

// NewServer creates the HTTP server over the given application handlers.
func NewServer(handlers Handlers, tokens ports.TokenIssuer) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/services", s.GetServices)
	api.POST("/payments/webhook", s.PaymentWebhook)

	authed := api.Group("", s.Authenticate)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/mine", s.GetMyOrders)
	authed.GET("/orders/available", s.GetAvailableOrders)
	authed.GET("/orders/:orderID", s.GetOrder)
	authed.POST("/orders/:orderID/accept", s.AcceptOrder)
	authed.POST("/orders/:orderID/start", s.StartOrder)
	authed.POST("/orders/:orderID/complete", s.CompleteOrder)
	authed.POST("/orders/:orderID/cancel", s.CancelOrder)
	authed.GET("/agents", s.ListAgents)
	authed.PUT("/agents/availability", s.SetAvailability)
	authed.GET("/agents/profile", s.GetAgentProfile)
	authed.PUT("/agents/profile", s.UpdateAgentProfile)
	authed.GET("/agents/orders", s.GetAgentOrders)
	authed.GET("/agents/stats", s.GetAgentStats)
	authed.POST("/agents/:agentID/background-check", s.ReviewBackgroundCheck)
	authed.POST("/payments/:orderID/refund", s.RefundPayment)
}

// authorize returns the authenticated identity when its role is one of
// the allowed roles.
func (s *Server) authorize(ctx echo.Context, roles ...user.Role) (ports.Identity, error) {
	identity, ok := ctx.Get(identityContextKey).(ports.Identity)
	if !ok {
		return ports.Identity{}, errAuthenticationRequired
	}

	for _, role := range roles {
		if identity.Role == role {
			return identity, nil
		}
	}

	return ports.Identity{}, errRoleNotAllowed
}

// encodeError maps application errors onto HTTP status codes.
func (s *Server) encodeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	var code int
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.Is(err, errAuthenticationRequired),
		errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, ports.ErrTokenExpired),
		errors.Is(err, ports.ErrTokenInvalid):
		code = http.StatusUnauthorized
	case errors.Is(err, errRoleNotAllowed),
		errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, commands.ErrNotOrderAgent),
		errors.Is(err, commands.ErrAgentNotApproved),
		errors.Is(err, queries.ErrOrderAccessDenied):
		code = http.StatusForbidden
	case errors.Is(err, commands.ErrAssignmentConflict),
		errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, ports.ErrConcurrentUpdate),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPaymentNotConfirmed),
		errors.Is(err, agent.ErrAgentUnavailable),
		errors.Is(err, commands.ErrServiceNotOrderable):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// badRequest reports a malformed or invalid request body.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
