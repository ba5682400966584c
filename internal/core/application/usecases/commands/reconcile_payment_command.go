package commands

import (
	"errors"

	"gofer/internal/pkg/guard"
)

var (
	ErrReconcilePaymentCommandIsNotConstructed = errors.New(
		"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
	)
	ErrPayloadIsRequired   = errors.New("webhook payload is required")
	ErrSignatureIsRequired = errors.New("webhook signature is required")
)

// ReconcilePaymentCommand carries a raw payment provider webhook callback:
// the payload and its signature, verified before any state changes.
type ReconcilePaymentCommand struct { //nolint:recvcheck //using for validation
	payload   []byte
	signature string

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand creates a command from a provider callback.
func NewReconcilePaymentCommand(payload []byte, signature string) (ReconcilePaymentCommand, error) {
	cmd := ReconcilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayload(payload),
		cmd.setSignature(signature),
	); err != nil {
		return ReconcilePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

// Payload returns the raw webhook body.
func (c ReconcilePaymentCommand) Payload() []byte {
	return c.payload
}

// Signature returns the provider's signature header.
func (c ReconcilePaymentCommand) Signature() string {
	return c.signature
}

func (c *ReconcilePaymentCommand) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return ErrPayloadIsRequired
	}

	c.payload = payload
	return nil
}

func (c *ReconcilePaymentCommand) setSignature(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	c.signature = signature
	return nil
}
