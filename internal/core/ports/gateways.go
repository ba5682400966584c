package ports

import (
	"context"
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
)

var (
	// ErrTokenExpired is returned by TokenIssuer.Verify for tokens past
	// their expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned by TokenIssuer.Verify for malformed or
	// tampered tokens.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrWebhookSignature is returned by PaymentGateway.VerifyWebhook when
	// a callback payload fails signature verification.
	ErrWebhookSignature = errors.New("webhook signature verification failed")
)

// Charge is the provider's reference data for a newly opened payment
// intent. The charge outcome arrives later through VerifyWebhook.
type Charge struct {
	// IntentRef is the provider's payment intent identifier.
	IntentRef string
	// ClientSecret is handed back to the customer's client so it can
	// complete the payment. The core never interprets it.
	ClientSecret string
}

// IntentStatus is the provider's current view of a payment intent, as
// returned by Retrieve.
type IntentStatus struct {
	// Status is the provider's intent status, e.g. "succeeded".
	Status string
	// ChargeRef is the provider's charge identifier, when present.
	ChargeRef string
	// MethodType is the payment method kind, when present.
	MethodType string
	// Last4 are the final card digits, when present.
	Last4 string
	// FailureReason carries the decline message, when present.
	FailureReason string
}

// WebhookEvent is a provider callback about a payment intent, verified
// against the webhook signing secret.
type WebhookEvent struct {
	// Type is the provider event name, e.g. "payment_intent.succeeded".
	Type string
	// IntentRef is the provider's payment intent identifier.
	IntentRef string
	// ChargeRef is the provider's charge identifier, when present.
	ChargeRef string
	// MethodType is the payment method kind, when present.
	MethodType string
	// Last4 are the final card digits, when present.
	Last4 string
	// FailureReason carries the decline message for failure events.
	FailureReason string
}

// PaymentGateway abstracts the external payment provider. Implementations
// talk to the provider's API; command handlers only see the decision.
type PaymentGateway interface {
	// CreateCustomer registers a billing profile with the provider and
	// returns its reference.
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	// Authorize opens a payment intent for the given amount against the
	// customer's billing profile and returns its reference and client
	// secret. The charge outcome is reported asynchronously through the
	// webhook; errors mean the provider could not be reached.
	Authorize(ctx context.Context, customerRef string, amount kernel.Money, description string) (Charge, error)

	// Retrieve fetches the provider's current view of a payment intent.
	// Used to reconcile payments whose webhook never arrived.
	Retrieve(ctx context.Context, intentRef string) (IntentStatus, error)

	// Reverse refunds a previously captured charge and returns the
	// provider's refund reference.
	Reverse(ctx context.Context, chargeRef string, amount kernel.Money) (string, error)

	// VerifyWebhook authenticates a provider callback payload against the
	// webhook signing secret and decodes it.
	VerifyWebhook(payload []byte, signature string) (WebhookEvent, error)
}

// MessagingGateway abstracts the SMS provider. Send returns the provider's
// message identifier on acceptance.
type MessagingGateway interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// Identity is the authenticated principal carried by an access token.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenIssuer mints and verifies access tokens for authenticated sessions.
type TokenIssuer interface {
	// Issue creates a signed token for the identity.
	Issue(identity Identity) (string, error)

	// Verify checks a token's signature and expiry and returns the
	// identity it carries. Returns ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (Identity, error)
}
