// Package goal contains financial goal use cases.
package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal     *entity.Goal
	Progress float64
	Status   entity.GoalStatus
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.CollectionCache[*entity.Goal]
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.CollectionCache[*entity.Goal]) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if err := validateGoalInput(input.Title, input.TargetAmount, input.CurrentAmount); err != nil {
		return nil, err
	}

	existing, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("goal not found")
		}
		return nil, record.FetchError("failed to find goal", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("goal belongs to another user")
	}

	existing.Title = input.Title
	existing.TargetAmount = input.TargetAmount
	existing.CurrentAmount = input.CurrentAmount
	existing.TargetDate = input.TargetDate
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, existing); err != nil {
		return nil, record.MutationError("failed to update goal", err)
	}

	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdateGoalOutput{
		Goal:     existing,
		Progress: existing.ClampedProgress(),
		Status:   existing.Status(),
	}, nil
}
