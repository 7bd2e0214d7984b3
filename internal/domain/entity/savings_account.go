// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsAccount represents a savings or investment account held at an
// institution.
type SavingsAccount struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Institution  string
	AccountType  string
	Balance      decimal.Decimal
	InterestRate *float64 // Annual rate in percent (0-100), optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewSavingsAccount creates a new SavingsAccount entity.
func NewSavingsAccount(userID uuid.UUID, institution, accountType string, balance decimal.Decimal, interestRate *float64) *SavingsAccount {
	now := time.Now().UTC()

	return &SavingsAccount{
		ID:           uuid.New(),
		UserID:       userID,
		Institution:  institution,
		AccountType:  accountType,
		Balance:      balance,
		InterestRate: interestRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
