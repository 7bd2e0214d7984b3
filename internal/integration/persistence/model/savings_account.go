// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SavingsAccountModel represents the savings_accounts table in the database.
type SavingsAccountModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Institution  string          `gorm:"type:varchar(255);not null"`
	AccountType  string          `gorm:"type:varchar(100);not null"`
	Balance      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InterestRate *float64        `gorm:"type:decimal(5,2)"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SavingsAccountModel.
func (SavingsAccountModel) TableName() string {
	return "savings_accounts"
}

// ToEntity converts a SavingsAccountModel to a domain SavingsAccount entity.
func (m *SavingsAccountModel) ToEntity() *entity.SavingsAccount {
	return &entity.SavingsAccount{
		ID:           m.ID,
		UserID:       m.UserID,
		Institution:  m.Institution,
		AccountType:  m.AccountType,
		Balance:      m.Balance,
		InterestRate: m.InterestRate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAtPtr(m.DeletedAt),
	}
}

// SavingsAccountFromEntity creates a SavingsAccountModel from a domain SavingsAccount entity.
func SavingsAccountFromEntity(a *entity.SavingsAccount) *SavingsAccountModel {
	return &SavingsAccountModel{
		ID:           a.ID,
		UserID:       a.UserID,
		Institution:  a.Institution,
		AccountType:  a.AccountType,
		Balance:      a.Balance,
		InterestRate: a.InterestRate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		DeletedAt:    deletedAtFromPtr(a.DeletedAt),
	}
}
