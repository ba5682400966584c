package ports

import (
	"context"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment record for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// GetByExternalRef retrieves a payment record by the provider's intent
	// identifier. Used when reconciling provider webhook events.
	GetByExternalRef(ctx context.Context, externalRef string) (*payment.Payment, error)

	// FindStalePending retrieves payment records still pending that were
	// created before the cutoff. Used to sweep payments whose webhook
	// never arrived.
	FindStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
