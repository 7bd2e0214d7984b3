// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTransaction_SignedAmount(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	t.Run("income contributes positively", func(t *testing.T) {
		tx := NewTransaction(userID, date, TransactionTypeIncome, decimal.NewFromInt(25000), "Salary", "")

		if got := tx.SignedAmount(); !got.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("expected 25000, got %s", got)
		}
	})

	t.Run("expense contributes negatively", func(t *testing.T) {
		tx := NewTransaction(userID, date, TransactionTypeExpense, decimal.NewFromInt(1250), "Groceries", "")

		if got := tx.SignedAmount(); !got.Equal(decimal.NewFromInt(-1250)) {
			t.Errorf("expected -1250, got %s", got)
		}
	})
}

func TestTransaction_CategoryLabel(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	t.Run("empty category falls back to default", func(t *testing.T) {
		tx := NewTransaction(userID, date, TransactionTypeExpense, decimal.NewFromInt(100), "", "")

		if got := tx.CategoryLabel(); got != DefaultCategory {
			t.Errorf("expected %q, got %q", DefaultCategory, got)
		}
	})

	t.Run("recorded category is kept", func(t *testing.T) {
		tx := NewTransaction(userID, date, TransactionTypeExpense, decimal.NewFromInt(100), "Transport", "")

		if got := tx.CategoryLabel(); got != "Transport" {
			t.Errorf("expected Transport, got %q", got)
		}
	})
}
