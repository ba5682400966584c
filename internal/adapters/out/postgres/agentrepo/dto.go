// Package agentrepo provides data transfer objects and mapping functions for
// agent persistence.
package agentrepo

import (
	"time"

	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// is_available is indexed because the assignment flow filters on it.
type AgentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Bio                   string
	ProfilePhoto          string
	IsAvailable           bool   `gorm:"index"`
	BackgroundCheckStatus string `gorm:"size:32"`
	BackgroundCheckDate   *time.Time
	TotalJobs             int
	CompletedJobs         int
	CancelledJobs         int
	AverageRating         float64
	TotalEarningsCents    int64
	CreatedAt             time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		Bio:                   aggregate.Bio(),
		ProfilePhoto:          aggregate.ProfilePhoto(),
		IsAvailable:           aggregate.IsAvailable(),
		BackgroundCheckStatus: aggregate.BackgroundCheckStatus().String(),
		BackgroundCheckDate:   aggregate.BackgroundCheckDate(),
		TotalJobs:             aggregate.TotalJobs(),
		CompletedJobs:         aggregate.CompletedJobs(),
		CancelledJobs:         aggregate.CancelledJobs(),
		AverageRating:         aggregate.AverageRating(),
		TotalEarningsCents:    aggregate.TotalEarnings().Cents(),
		CreatedAt:             aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	checkStatus, err := agent.BackgroundCheckStatusFromString(dto.BackgroundCheckStatus)
	if err != nil {
		return nil, err
	}
	totalEarnings, err := kernel.NewMoney(dto.TotalEarningsCents)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(
		id,
		userID,
		dto.Bio,
		dto.ProfilePhoto,
		dto.IsAvailable,
		checkStatus,
		dto.BackgroundCheckDate,
		dto.TotalJobs,
		dto.CompletedJobs,
		dto.CancelledJobs,
		dto.AverageRating,
		totalEarnings,
		dto.CreatedAt,
	)
}
