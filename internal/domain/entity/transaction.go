// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultCategory is the label used when a transaction carries no category.
const DefaultCategory = "Other"

// Transaction represents a single income or expense record.
//
// Amount is always a non-negative magnitude; the direction is carried by
// Type, never by the sign of Amount.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Type      TransactionType
	Amount    decimal.Decimal
	Category  string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SignedAmount returns the transaction's contribution to cash flow:
// positive for income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CategoryLabel returns the transaction category, falling back to
// DefaultCategory when none was recorded.
func (t *Transaction) CategoryLabel() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// IsValidTransactionType reports whether the given type is known.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
