package ports

import (
	"context"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for outbound
// notification records.
type NotificationRepository interface {
	// Add persists a new notification record to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification record.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllRetryable retrieves failed notifications that are still within
	// the retry budget. Used by the notification retry job.
	GetAllRetryable(ctx context.Context, maxRetries int) ([]*notification.Notification, error)
}
