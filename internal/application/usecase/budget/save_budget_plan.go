// Package budget contains monthly budget plan use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// SaveBudgetPlanInput represents the input for writing a month's budget plan.
type SaveBudgetPlanInput struct {
	UserID               uuid.UUID
	MonthYear            time.Time
	ProjectedIncome      decimal.Decimal
	ProjectedExpenditure decimal.Decimal
	ActualIncome         *decimal.Decimal
	ActualExpenditure    *decimal.Decimal
	Notes                string
}

// SaveBudgetPlanOutput represents the output of writing a budget plan.
type SaveBudgetPlanOutput struct {
	Plan           *entity.BudgetPlan
	SurplusDeficit decimal.Decimal
	Outcome        entity.BudgetOutcome
}

// SaveBudgetPlanUseCase writes a budget plan keyed by (user, month). Writing
// an existing month replaces the plan rather than adding a duplicate.
type SaveBudgetPlanUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
}

// NewSaveBudgetPlanUseCase creates a new SaveBudgetPlanUseCase instance.
func NewSaveBudgetPlanUseCase(budgetRepo adapter.BudgetPlanRepository) *SaveBudgetPlanUseCase {
	return &SaveBudgetPlanUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget plan write.
func (uc *SaveBudgetPlanUseCase) Execute(ctx context.Context, input SaveBudgetPlanInput) (*SaveBudgetPlanOutput, error) {
	if err := validateBudgetPlanInput(input); err != nil {
		return nil, err
	}

	plan := entity.NewBudgetPlan(
		input.UserID,
		input.MonthYear,
		input.ProjectedIncome,
		input.ProjectedExpenditure,
		input.ActualIncome,
		input.ActualExpenditure,
		input.Notes,
	)

	saved, err := uc.budgetRepo.Upsert(ctx, plan)
	if err != nil {
		return nil, record.MutationError("failed to save budget plan", err)
	}

	return &SaveBudgetPlanOutput{
		Plan:           saved,
		SurplusDeficit: saved.SurplusDeficit(),
		Outcome:        saved.Outcome(),
	}, nil
}

// validateBudgetPlanInput rejects invalid fields before the store is touched.
func validateBudgetPlanInput(input SaveBudgetPlanInput) error {
	if input.MonthYear.IsZero() {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidDate,
			"budget month is required",
		)
	}
	if input.ProjectedIncome.IsNegative() || input.ProjectedExpenditure.IsNegative() {
		return record.InvalidAmount("projected figures must not be negative")
	}
	if input.ActualIncome != nil && input.ActualIncome.IsNegative() {
		return record.InvalidAmount("actual income must not be negative")
	}
	if input.ActualExpenditure != nil && input.ActualExpenditure.IsNegative() {
		return record.InvalidAmount("actual expenditure must not be negative")
	}
	return nil
}
