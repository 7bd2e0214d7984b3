// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Creditor       string           `gorm:"type:varchar(255);not null"`
	DebtType       string           `gorm:"type:varchar(100);not null"`
	Balance        decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyPayment *decimal.Decimal `gorm:"type:decimal(15,2)"`
	InterestRate   *float64         `gorm:"type:decimal(5,2)"`
	PaymentDueDay  *int             `gorm:"type:smallint"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
	DeletedAt      gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:             m.ID,
		UserID:         m.UserID,
		Creditor:       m.Creditor,
		DebtType:       m.DebtType,
		Balance:        m.Balance,
		MonthlyPayment: m.MonthlyPayment,
		InterestRate:   m.InterestRate,
		PaymentDueDay:  m.PaymentDueDay,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAtPtr(m.DeletedAt),
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(d *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:             d.ID,
		UserID:         d.UserID,
		Creditor:       d.Creditor,
		DebtType:       d.DebtType,
		Balance:        d.Balance,
		MonthlyPayment: d.MonthlyPayment,
		InterestRate:   d.InterestRate,
		PaymentDueDay:  d.PaymentDueDay,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		DeletedAt:      deletedAtFromPtr(d.DeletedAt),
	}
}
