// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetOutcome classifies a month's surplus or deficit.
type BudgetOutcome string

const (
	BudgetOutcomeFavourable   BudgetOutcome = "favourable"
	BudgetOutcomeUnfavourable BudgetOutcome = "unfavourable"
	BudgetOutcomeNeutral      BudgetOutcome = "neutral"
)

// BudgetPlan represents one month's projected and actual figures. Plans are
// keyed by (user, month): writing a plan for an existing month replaces it.
//
// Actual figures stay nil until the month is reconciled; derived arithmetic
// treats nil as zero but the stored value remains nullable.
type BudgetPlan struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	MonthYear            time.Time // First day of the month
	ProjectedIncome      decimal.Decimal
	ProjectedExpenditure decimal.Decimal
	ActualIncome         *decimal.Decimal
	ActualExpenditure    *decimal.Decimal
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time // Soft-delete support
}

// NewBudgetPlan creates a new BudgetPlan entity. The month is normalised to
// its first day at midnight UTC.
func NewBudgetPlan(
	userID uuid.UUID,
	monthYear time.Time,
	projectedIncome, projectedExpenditure decimal.Decimal,
	actualIncome, actualExpenditure *decimal.Decimal,
	notes string,
) *BudgetPlan {
	now := time.Now().UTC()

	return &BudgetPlan{
		ID:                   uuid.New(),
		UserID:               userID,
		MonthYear:            NormaliseMonth(monthYear),
		ProjectedIncome:      projectedIncome,
		ProjectedExpenditure: projectedExpenditure,
		ActualIncome:         actualIncome,
		ActualExpenditure:    actualExpenditure,
		Notes:                notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// NormaliseMonth truncates a date to the first day of its month in UTC.
func NormaliseMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SurplusDeficit returns actual income minus actual expenditure, with absent
// actuals treated as zero.
func (p *BudgetPlan) SurplusDeficit() decimal.Decimal {
	income := decimal.Zero
	if p.ActualIncome != nil {
		income = *p.ActualIncome
	}
	expenditure := decimal.Zero
	if p.ActualExpenditure != nil {
		expenditure = *p.ActualExpenditure
	}
	return income.Sub(expenditure)
}

// Outcome classifies the surplus/deficit: positive is favourable, negative
// unfavourable, zero neutral.
func (p *BudgetPlan) Outcome() BudgetOutcome {
	surplus := p.SurplusDeficit()
	switch {
	case surplus.IsPositive():
		return BudgetOutcomeFavourable
	case surplus.IsNegative():
		return BudgetOutcomeUnfavourable
	default:
		return BudgetOutcomeNeutral
	}
}
