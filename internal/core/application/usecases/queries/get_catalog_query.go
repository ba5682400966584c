package queries

import (
	"errors"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the active service catalog in display order.
// Beta entries are included and flagged so clients can render them as
// coming soon.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query for the service catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// ServiceResponse is the catalog read model.
type ServiceResponse struct {
	ID             kernel.UUID
	Name           string
	Slug           string
	Description    string
	BasePriceCents int64
	IsBeta         bool
	SortOrder      int
}
