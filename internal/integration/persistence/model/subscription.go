// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceName  string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BillingCycle string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	RenewalDate  *time.Time      `gorm:"type:date"`
	Status       string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:           m.ID,
		UserID:       m.UserID,
		ServiceName:  m.ServiceName,
		Amount:       m.Amount,
		BillingCycle: entity.BillingCycle(m.BillingCycle),
		RenewalDate:  m.RenewalDate,
		Status:       entity.SubscriptionStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAtPtr(m.DeletedAt),
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(s *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		ServiceName:  s.ServiceName,
		Amount:       s.Amount,
		BillingCycle: string(s.BillingCycle),
		RenewalDate:  s.RenewalDate,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		DeletedAt:    deletedAtFromPtr(s.DeletedAt),
	}
}
