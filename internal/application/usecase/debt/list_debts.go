// Package debt contains debt tracking use cases.
package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "debts"

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID uuid.UUID
}

// ListDebtsOutput represents the output of listing debts, ordered
// newest-first by creation time.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles debt listing through the snapshot cache.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
	cache    adapter.CollectionCache[*entity.Debt]
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository, cache adapter.CollectionCache[*entity.Debt]) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
		cache:    cache,
	}
}

// Execute performs the debt listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.Debt, error) {
			return uc.debtRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}
	return &ListDebtsOutput{Debts: debts}, nil
}
