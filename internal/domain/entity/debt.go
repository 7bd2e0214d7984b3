// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents an outstanding loan, credit card or other liability.
type Debt struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Creditor       string
	DebtType       string
	Balance        decimal.Decimal
	MonthlyPayment *decimal.Decimal // Optional
	InterestRate   *float64         // Annual rate in percent, optional
	PaymentDueDay  *int             // Day of month (1-31), optional
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewDebt creates a new Debt entity.
func NewDebt(
	userID uuid.UUID,
	creditor string,
	debtType string,
	balance decimal.Decimal,
	monthlyPayment *decimal.Decimal,
	interestRate *float64,
	paymentDueDay *int,
) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:             uuid.New(),
		UserID:         userID,
		Creditor:       creditor,
		DebtType:       debtType,
		Balance:        balance,
		MonthlyPayment: monthlyPayment,
		InterestRate:   interestRate,
		PaymentDueDay:  paymentDueDay,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
