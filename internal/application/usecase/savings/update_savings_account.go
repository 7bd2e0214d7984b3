// Package savings contains savings account use cases.
package savings

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

// UpdateSavingsAccountInput represents the input for savings account update.
type UpdateSavingsAccountInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Institution  string
	AccountType  string
	Balance      decimal.Decimal
	InterestRate *float64
}

// UpdateSavingsAccountOutput represents the output of savings account update.
type UpdateSavingsAccountOutput struct {
	Account *entity.SavingsAccount
}

// UpdateSavingsAccountUseCase handles savings account update logic.
type UpdateSavingsAccountUseCase struct {
	accountRepo adapter.SavingsAccountRepository
	cache       adapter.CollectionCache[*entity.SavingsAccount]
}

// NewUpdateSavingsAccountUseCase creates a new UpdateSavingsAccountUseCase instance.
func NewUpdateSavingsAccountUseCase(
	accountRepo adapter.SavingsAccountRepository,
	cache adapter.CollectionCache[*entity.SavingsAccount],
) *UpdateSavingsAccountUseCase {
	return &UpdateSavingsAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the savings account update.
func (uc *UpdateSavingsAccountUseCase) Execute(ctx context.Context, input UpdateSavingsAccountInput) (*UpdateSavingsAccountOutput, error) {
	if err := validateSavingsAccountInput(input.Institution, input.Balance); err != nil {
		return nil, err
	}

	existing, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("savings account not found")
		}
		return nil, record.FetchError("failed to find savings account", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("savings account belongs to another user")
	}

	existing.Institution = input.Institution
	existing.AccountType = input.AccountType
	existing.Balance = input.Balance
	existing.InterestRate = input.InterestRate
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, existing); err != nil {
		return nil, record.MutationError("failed to update savings account", err)
	}

	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdateSavingsAccountOutput{Account: existing}, nil
}
