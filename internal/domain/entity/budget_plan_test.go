// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestBudgetPlan_SurplusDeficit(t *testing.T) {
	userID := uuid.New()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil actuals are treated as zero", func(t *testing.T) {
		p := NewBudgetPlan(userID, month, decimal.NewFromInt(25000), decimal.NewFromInt(18000), nil, nil, "")

		if !p.SurplusDeficit().IsZero() {
			t.Errorf("expected zero surplus, got %s", p.SurplusDeficit())
		}
		if outcome := p.Outcome(); outcome != BudgetOutcomeNeutral {
			t.Errorf("expected neutral outcome, got %q", outcome)
		}
	})

	t.Run("spending over income is a deficit", func(t *testing.T) {
		income := decimal.NewFromInt(10000)
		expenditure := decimal.NewFromInt(12000)
		p := NewBudgetPlan(userID, month, decimal.NewFromInt(10000), decimal.NewFromInt(9000), &income, &expenditure, "")

		if got := p.SurplusDeficit(); !got.Equal(decimal.NewFromInt(-2000)) {
			t.Errorf("expected surplus -2000, got %s", got)
		}
		if outcome := p.Outcome(); outcome != BudgetOutcomeUnfavourable {
			t.Errorf("expected unfavourable outcome, got %q", outcome)
		}
	})

	t.Run("income over spending is a surplus", func(t *testing.T) {
		income := decimal.NewFromInt(25000)
		expenditure := decimal.NewFromInt(17500)
		p := NewBudgetPlan(userID, month, decimal.NewFromInt(24000), decimal.NewFromInt(18000), &income, &expenditure, "")

		if got := p.SurplusDeficit(); !got.Equal(decimal.NewFromInt(7500)) {
			t.Errorf("expected surplus 7500, got %s", got)
		}
		if outcome := p.Outcome(); outcome != BudgetOutcomeFavourable {
			t.Errorf("expected favourable outcome, got %q", outcome)
		}
	})
}

func TestNormaliseMonth(t *testing.T) {
	t.Run("truncates to first of month in UTC", func(t *testing.T) {
		in := time.Date(2026, time.July, 19, 14, 30, 12, 0, time.UTC)
		want := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

		if got := NormaliseMonth(in); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("first of month is unchanged", func(t *testing.T) {
		in := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

		if got := NormaliseMonth(in); !got.Equal(in) {
			t.Errorf("expected %s, got %s", in, got)
		}
	})
}
