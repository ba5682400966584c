package ports

import (
	"context"

	"gofer/internal/core/domain/model/catalog"
	"gofer/internal/core/domain/model/kernel"
)

// ServiceRepository defines the persistence contract for catalog entries.
type ServiceRepository interface {
	// Add persists a new catalog entry to storage.
	Add(ctx context.Context, aggregate *catalog.Service) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *catalog.Service) error

	// Get retrieves a catalog entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)

	// GetBySlug retrieves a catalog entry by its URL-safe identifier.
	GetBySlug(ctx context.Context, slug string) (*catalog.Service, error)
}
