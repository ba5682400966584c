// Package paymentrepo provides data transfer objects and mapping functions for
// payment record persistence.
package paymentrepo

import (
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
// external_ref carries a unique index because provider webhook events are
// looked up by intent identifier.
type PaymentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	AmountCents       int64
	Status            string `gorm:"size:32"`
	ExternalRef       string `gorm:"size:255;uniqueIndex"`
	ChargeRef         string
	MethodType        string
	Last4             string `gorm:"size:4"`
	FailureReason     string
	RefundAmountCents int64
	RefundReason      string
	RefundedAt        *time.Time
	CreatedAt         time.Time
	ProcessedAt       *time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		AmountCents:       aggregate.Amount().Cents(),
		Status:            aggregate.Status().String(),
		ExternalRef:       aggregate.ExternalRef(),
		ChargeRef:         aggregate.ChargeRef(),
		MethodType:        aggregate.MethodType(),
		Last4:             aggregate.Last4(),
		FailureReason:     aggregate.FailureReason(),
		RefundAmountCents: aggregate.RefundAmount().Cents(),
		RefundReason:      aggregate.RefundReason(),
		RefundedAt:        aggregate.RefundedAt(),
		CreatedAt:         aggregate.CreatedAt(),
		ProcessedAt:       aggregate.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a payment record.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	refundAmount, err := kernel.NewMoney(dto.RefundAmountCents)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		amount,
		status,
		dto.ExternalRef,
		dto.ChargeRef,
		dto.MethodType,
		dto.Last4,
		dto.FailureReason,
		refundAmount,
		dto.RefundReason,
		dto.RefundedAt,
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
