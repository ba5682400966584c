package http

import (
	"errors"
	"io"
	"net/http"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// signatureHeader carries the provider's webhook signature.
const signatureHeader = "Stripe-Signature"

// webhookBodyLimit bounds how much of a callback payload is read.
const webhookBodyLimit = 1 << 20

// PaymentWebhook handles POST /api/payments/webhook - applies a payment
// provider callback. The payload is authenticated by its signature, not
// by a session token.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request().Body, webhookBodyLimit))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReconcilePaymentCommand(payload, ctx.Request().Header.Get(signatureHeader))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ReconcilePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, ports.ErrWebhookSignature) {
			return badRequest(ctx, err)
		}

		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type refundPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

// RefundPayment handles POST /api/payments/:orderID/refund - reverses a
// captured charge, fully or partially. A zero amount refunds the whole
// charge.
func (s *Server) RefundPayment(ctx echo.Context) error {
	if _, err := s.authorize(ctx, user.RoleAdmin); err != nil {
		return s.encodeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req refundPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(orderID, req.AmountCents, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.encodeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
