// Package goal contains financial goal use cases.
package goal

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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal     *entity.Goal
	Progress float64
	Status   entity.GoalStatus
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.CollectionCache[*entity.Goal]
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.CollectionCache[*entity.Goal]) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalInput(input.Title, input.TargetAmount, input.CurrentAmount); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, input.Title, input.TargetAmount, input.CurrentAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, record.MutationError("failed to create goal", err)
	}

	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, goal)

	return &CreateGoalOutput{
		Goal:     goal,
		Progress: goal.ClampedProgress(),
		Status:   goal.Status(),
	}, nil
}

// validateGoalInput rejects invalid fields before the store is touched.
func validateGoalInput(title string, targetAmount, currentAmount decimal.Decimal) error {
	if title == "" {
		return record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"goal title is required",
		)
	}
	if targetAmount.IsNegative() || currentAmount.IsNegative() {
		return record.InvalidAmount("goal amounts must not be negative")
	}
	return nil
}
