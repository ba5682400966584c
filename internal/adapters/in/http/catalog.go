package http

import (
	"net/http"

	"gofer/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type serviceResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	BasePriceCents int64  `json:"base_price_cents"`
	IsBeta         bool   `json:"is_beta"`
	SortOrder      int    `json:"sort_order"`
}

// GetServices handles GET /api/services - lists the active service
// catalog in display order.
func (s *Server) GetServices(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	services, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.encodeError(ctx, err)
	}

	response := make([]serviceResponse, len(services))
	for i, svc := range services {
		response[i] = serviceResponse{
			ID:             svc.ID.String(),
			Name:           svc.Name,
			Slug:           svc.Slug,
			Description:    svc.Description,
			BasePriceCents: svc.BasePriceCents,
			IsBeta:         svc.IsBeta,
			SortOrder:      svc.SortOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
