// Package savings contains savings account use cases.
package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "savings_accounts"

// ListSavingsAccountsInput represents the input for listing savings accounts.
type ListSavingsAccountsInput struct {
	UserID uuid.UUID
}

// ListSavingsAccountsOutput represents the output of listing savings
// accounts, ordered newest-first by creation time.
type ListSavingsAccountsOutput struct {
	Accounts []*entity.SavingsAccount
}

// ListSavingsAccountsUseCase handles savings account listing through the
// snapshot cache.
type ListSavingsAccountsUseCase struct {
	accountRepo adapter.SavingsAccountRepository
	cache       adapter.CollectionCache[*entity.SavingsAccount]
}

// NewListSavingsAccountsUseCase creates a new ListSavingsAccountsUseCase instance.
func NewListSavingsAccountsUseCase(
	accountRepo adapter.SavingsAccountRepository,
	cache adapter.CollectionCache[*entity.SavingsAccount],
) *ListSavingsAccountsUseCase {
	return &ListSavingsAccountsUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the savings account listing.
func (uc *ListSavingsAccountsUseCase) Execute(ctx context.Context, input ListSavingsAccountsInput) (*ListSavingsAccountsOutput, error) {
	accounts, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.SavingsAccount, error) {
			return uc.accountRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}
	return &ListSavingsAccountsOutput{Accounts: accounts}, nil
}
