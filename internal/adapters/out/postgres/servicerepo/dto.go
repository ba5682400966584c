// Package servicerepo provides data transfer objects and mapping functions for
// catalog entry persistence.
package servicerepo

import (
	"gofer/internal/core/domain/model/catalog"
	"gofer/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting catalog entries.
type ServiceDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Slug           string `gorm:"size:64;uniqueIndex"`
	Description    string
	BasePriceCents int64
	IsActive       bool
	IsBeta         bool
	SortOrder      int
}

// TableName specifies the database table name for catalog entities.
func (ServiceDTO) TableName() string {
	return "services"
}

// fromDomain converts a catalog entry to its database representation.
func fromDomain(aggregate *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Slug:           aggregate.Slug(),
		Description:    aggregate.Description(),
		BasePriceCents: aggregate.BasePrice().Cents(),
		IsActive:       aggregate.IsActive(),
		IsBeta:         aggregate.IsBeta(),
		SortOrder:      aggregate.SortOrder(),
	}
}

// toDomain converts a database DTO to a catalog entry.
func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePriceCents)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(
		id,
		dto.Name,
		dto.Slug,
		dto.Description,
		basePrice,
		dto.IsActive,
		dto.IsBeta,
		dto.SortOrder,
	)
}
