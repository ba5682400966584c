// Package notificationrepo provides data transfer objects and mapping
// functions for outbound notification persistence.
package notificationrepo

import (
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting outbound
// notifications. status and retry_count drive the retry job's scan.
type NotificationDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;index"`
	OrderID      *uuid.UUID `gorm:"type:uuid"`
	Recipient    string
	Body         string
	Status       string `gorm:"size:32;index"`
	ExternalID   string
	ErrorMessage string
	RetryCount   int
	CreatedAt    time.Time
	SentAt       *time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		OrderID:      orderID,
		Recipient:    aggregate.Recipient(),
		Body:         aggregate.Body(),
		Status:       aggregate.Status().String(),
		ExternalID:   aggregate.ExternalID(),
		ErrorMessage: aggregate.ErrorMessage(),
		RetryCount:   aggregate.RetryCount(),
		CreatedAt:    aggregate.CreatedAt(),
		SentAt:       aggregate.SentAt(),
	}
}

// toDomain converts a database DTO to a notification aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	status, err := notification.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		orderID,
		dto.Recipient,
		dto.Body,
		status,
		dto.ExternalID,
		dto.ErrorMessage,
		dto.RetryCount,
		dto.CreatedAt,
		dto.SentAt,
	)
}
