package http

import (
	"net/http"
	"time"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/application/usecases/queries"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	ServiceSlug         string `json:"service_slug"`
	Description         string `json:"description"`
	PickupAddress       string `json:"pickup_address"`
	DeliveryAddress     string `json:"delivery_address"`
	SpecialInstructions string `json:"special_instructions"`
}

type createOrderResponse struct {
	OrderID             string `json:"order_id"`
	PaymentClientSecret string `json:"payment_client_secret"`
}

type completeOrderRequest struct {
	Notes                string   `json:"notes"`
	CompletionPhotos     []string `json:"completion_photos"`
	ReceiptPhotos        []string `json:"receipt_photos"`
	AdditionalCostsCents int64    `json:"additional_costs_cents"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type orderResponse struct {
	ID               string    `json:"id"`
	Number           string    `json:"number"`
	ServiceID        string    `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	Description      string    `json:"description"`
	PickupAddress    string    `json:"pickup_address"`
	DeliveryAddress  string    `json:"delivery_address"`
	Status           string    `json:"status"`
	ServiceFeeCents  int64     `json:"service_fee_cents"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:               o.ID.String(),
			Number:           o.Number,
			ServiceID:        o.ServiceID.String(),
			ServiceName:      o.ServiceName,
			Description:      o.Description,
			PickupAddress:    o.PickupAddress,
			DeliveryAddress:  o.DeliveryAddress,
			Status:           o.Status,
			ServiceFeeCents:  o.ServiceFeeCents,
			TotalAmountCents: o.TotalAmountCents,
			CreatedAt:        o.CreatedAt,
		}
	}

	return response
}

type orderDetailResponse struct {
	ID                   string     `json:"id"`
	Number               string     `json:"number"`
	ServiceID            string     `json:"service_id"`
	ServiceName          string     `json:"service_name"`
	Description          string     `json:"description"`
	PickupAddress        string     `json:"pickup_address"`
	DeliveryAddress      string     `json:"delivery_address"`
	SpecialInstructions  string     `json:"special_instructions"`
	Status               string     `json:"status"`
	PaymentConfirmed     bool       `json:"payment_confirmed"`
	ServiceFeeCents      int64      `json:"service_fee_cents"`
	AdditionalCostsCents int64      `json:"additional_costs_cents"`
	TotalAmountCents     int64      `json:"total_amount_cents"`
	CompletionNotes      string     `json:"completion_notes"`
	CancellationReason   string     `json:"cancellation_reason"`
	CreatedAt            time.Time  `json:"created_at"`
	AcceptedAt           *time.Time `json:"accepted_at"`
	StartedAt            *time.Time `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
	CancelledAt          *time.Time `json:"cancelled_at"`
}

// orderIDParam parses the :orderID path parameter.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

// GetOrder handles GET /api/orders/:orderID - returns one order in detail.
// Visible to the order's customer, its assigned agent, and admins.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleCustomer, user.RoleAgent, user.RoleAdmin)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, identity.UserID, identity.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse{
		ID:                   detail.ID.String(),
		Number:               detail.Number,
		ServiceID:            detail.ServiceID.String(),
		ServiceName:          detail.ServiceName,
		Description:          detail.Description,
		PickupAddress:        detail.PickupAddress,
		DeliveryAddress:      detail.DeliveryAddress,
		SpecialInstructions:  detail.SpecialInstructions,
		Status:               detail.Status,
		PaymentConfirmed:     detail.PaymentConfirmed,
		ServiceFeeCents:      detail.ServiceFeeCents,
		AdditionalCostsCents: detail.AdditionalCostsCents,
		TotalAmountCents:     detail.TotalAmountCents,
		CompletionNotes:      detail.CompletionNotes,
		CancellationReason:   detail.CancellationReason,
		CreatedAt:            detail.CreatedAt,
		AcceptedAt:           detail.AcceptedAt,
		StartedAt:            detail.StartedAt,
		CompletedAt:          detail.CompletedAt,
		CancelledAt:          detail.CancelledAt,
	})
}

// CreateOrder handles POST /api/orders - places a new order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleCustomer)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		identity.UserID,
		req.ServiceSlug,
		req.Description,
		order.Details{
			PickupAddress:       req.PickupAddress,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
		},
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID:             orderID.String(),
		PaymentClientSecret: result.ClientSecret,
	})
}

// GetMyOrders handles GET /api/orders/mine - lists the authenticated
// customer's orders, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleCustomer)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAvailableOrders handles GET /api/orders/available - lists paid,
// unclaimed orders an agent can accept.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.RoleAgent); err != nil {
		return s.encodeError(ctx, err)
	}

	query := queries.NewGetAvailableOrdersQuery()

	orders, err := s.handlers.GetAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AcceptOrder handles POST /api/orders/:orderID/accept - claims an order
// for the authenticated agent. At most one agent wins a contested order;
// the rest receive a conflict.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartOrder handles POST /api/orders/:orderID/start - marks an accepted
// order as in progress.
func (s *Server) StartOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewStartOrderCommand(orderID, identity.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.StartOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles POST /api/orders/:orderID/complete - submits the
// completion evidence and settles the order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleAgent)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req completeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(
		orderID,
		identity.UserID,
		req.Notes,
		req.CompletionPhotos,
		req.ReceiptPhotos,
		req.AdditionalCostsCents,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/orders/:orderID/cancel - cancels an order
// on behalf of its customer or an admin.
func (s *Server) CancelOrder(ctx echo.Context) error {
	identity, err := s.authorize(ctx, user.RoleCustomer, user.RoleAdmin)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, identity.UserID, identity.Role, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
