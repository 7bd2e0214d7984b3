// Package budget contains monthly budget plan use cases.
package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

// ListBudgetPlansInput represents the input for listing budget plans.
type ListBudgetPlansInput struct {
	UserID uuid.UUID
}

// BudgetPlanOutput represents a budget plan with its derived figures.
type BudgetPlanOutput struct {
	Plan           *entity.BudgetPlan
	SurplusDeficit decimal.Decimal
	Outcome        entity.BudgetOutcome
}

// ListBudgetPlansOutput represents the output of listing budget plans,
// ordered by month descending.
type ListBudgetPlansOutput struct {
	Plans []*BudgetPlanOutput
}

// ListBudgetPlansUseCase handles budget plan listing.
type ListBudgetPlansUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
}

// NewListBudgetPlansUseCase creates a new ListBudgetPlansUseCase instance.
func NewListBudgetPlansUseCase(budgetRepo adapter.BudgetPlanRepository) *ListBudgetPlansUseCase {
	return &ListBudgetPlansUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget plan listing. Surplus and outcome are derived
// on every read; absent actuals count as zero.
func (uc *ListBudgetPlansUseCase) Execute(ctx context.Context, input ListBudgetPlansInput) (*ListBudgetPlansOutput, error) {
	plans, err := uc.budgetRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, record.FetchError("failed to list budget plans", err)
	}

	outputs := make([]*BudgetPlanOutput, len(plans))
	for i, p := range plans {
		outputs[i] = &BudgetPlanOutput{
			Plan:           p,
			SurplusDeficit: p.SurplusDeficit(),
			Outcome:        p.Outcome(),
		}
	}
	return &ListBudgetPlansOutput{Plans: outputs}, nil
}
