// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex"`
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         string `gorm:"size:32"`
	IsActive     bool
	BillingRef   string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		IsActive:     aggregate.IsActive(),
		BillingRef:   aggregate.BillingRef(),
		LastLoginAt:  aggregate.LastLoginAt(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		role,
		dto.IsActive,
		dto.BillingRef,
		dto.LastLoginAt,
		dto.CreatedAt,
	)
}
