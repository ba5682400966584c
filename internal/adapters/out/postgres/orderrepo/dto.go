// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and agent assignment so the assignment arbiter and the
// listing queries stay cheap.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number               string     `gorm:"size:16;uniqueIndex"`
	CustomerID           uuid.UUID  `gorm:"type:uuid;index"`
	AgentID              *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID            uuid.UUID  `gorm:"type:uuid"`
	Description          string
	PickupAddress        string
	DeliveryAddress      string
	SpecialInstructions  string
	ServiceFeeCents      int64
	AdditionalCostsCents int64
	TotalAmountCents     int64
	Status               string `gorm:"size:32;index"`
	PaymentConfirmed     bool
	CompletionNotes      string
	CompletionPhotos     pq.StringArray `gorm:"type:text[]"`
	ReceiptPhotos        pq.StringArray `gorm:"type:text[]"`
	CancellationReason   string
	CreatedAt            time.Time
	AcceptedAt           *time.Time
	StartedAt            *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		Number:               aggregate.Number().String(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		AgentID:              agentID,
		ServiceID:            aggregate.ServiceID().Bytes(),
		Description:          aggregate.Description(),
		PickupAddress:        aggregate.Details().PickupAddress,
		DeliveryAddress:      aggregate.Details().DeliveryAddress,
		SpecialInstructions:  aggregate.Details().SpecialInstructions,
		ServiceFeeCents:      aggregate.ServiceFee().Cents(),
		AdditionalCostsCents: aggregate.AdditionalCosts().Cents(),
		TotalAmountCents:     aggregate.TotalAmount().Cents(),
		Status:               aggregate.Status().String(),
		PaymentConfirmed:     aggregate.PaymentConfirmed(),
		CompletionNotes:      aggregate.CompletionNotes(),
		CompletionPhotos:     aggregate.CompletionPhotos(),
		ReceiptPhotos:        aggregate.ReceiptPhotos(),
		CancellationReason:   aggregate.CancellationReason(),
		CreatedAt:            aggregate.CreatedAt(),
		AcceptedAt:           aggregate.AcceptedAt(),
		StartedAt:            aggregate.StartedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		CancelledAt:          aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so cross-field consistency is re-verified on every load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	serviceFee, err := kernel.NewMoney(dto.ServiceFeeCents)
	if err != nil {
		return nil, err
	}
	additionalCosts, err := kernel.NewMoney(dto.AdditionalCostsCents)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		customerID,
		agentID,
		serviceID,
		dto.Description,
		order.Details{
			PickupAddress:       dto.PickupAddress,
			DeliveryAddress:     dto.DeliveryAddress,
			SpecialInstructions: dto.SpecialInstructions,
		},
		serviceFee,
		additionalCosts,
		totalAmount,
		status,
		dto.PaymentConfirmed,
		dto.CompletionNotes,
		dto.CompletionPhotos,
		dto.ReceiptPhotos,
		dto.CancellationReason,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.CancelledAt,
	)
}
