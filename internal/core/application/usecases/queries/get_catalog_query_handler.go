package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofer/internal/core/domain/model/kernel"
)

// GetCatalogQueryHandler reads the active service catalog.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog listings.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query in display order.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]ServiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			slug,
			description,
			base_price_cents,
			is_beta,
			sort_order
		FROM services
		WHERE is_active
		ORDER BY sort_order, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]ServiceResponse, 0)

	for rows.Next() {
		var resp ServiceResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Slug,
			&resp.Description,
			&resp.BasePriceCents,
			&resp.IsBeta,
			&resp.SortOrder,
		); err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = serviceID

		services = append(services, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
