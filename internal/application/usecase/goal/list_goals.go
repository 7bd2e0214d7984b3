// Package goal contains financial goal use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "goals"

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// GoalOutput represents a goal with its derived progress figures.
type GoalOutput struct {
	Goal     *entity.Goal
	Progress float64
	Status   entity.GoalStatus
}

// ListGoalsOutput represents the output of listing goals, ordered
// newest-first by creation time.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles goal listing through the snapshot cache.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.CollectionCache[*entity.Goal]
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, cache adapter.CollectionCache[*entity.Goal]) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute performs the goal listing. Progress and status are derived from the
// stored amounts on every read, never persisted.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.Goal, error) {
			return uc.goalRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}

	outputs := make([]*GoalOutput, len(goals))
	for i, g := range goals {
		outputs[i] = &GoalOutput{
			Goal:     g,
			Progress: g.ClampedProgress(),
			Status:   g.Status(),
		}
	}
	return &ListGoalsOutput{Goals: outputs}, nil
}
