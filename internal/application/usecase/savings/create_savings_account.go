// Package savings contains savings account use cases.
package savings

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// CreateSavingsAccountInput represents the input for savings account creation.
type CreateSavingsAccountInput struct {
	UserID       uuid.UUID
	Institution  string
	AccountType  string
	Balance      decimal.Decimal
	InterestRate *float64
}

// CreateSavingsAccountOutput represents the output of savings account creation.
type CreateSavingsAccountOutput struct {
	Account *entity.SavingsAccount
}

// CreateSavingsAccountUseCase handles savings account creation logic.
type CreateSavingsAccountUseCase struct {
	accountRepo adapter.SavingsAccountRepository
	cache       adapter.CollectionCache[*entity.SavingsAccount]
}

// NewCreateSavingsAccountUseCase creates a new CreateSavingsAccountUseCase instance.
func NewCreateSavingsAccountUseCase(
	accountRepo adapter.SavingsAccountRepository,
	cache adapter.CollectionCache[*entity.SavingsAccount],
) *CreateSavingsAccountUseCase {
	return &CreateSavingsAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute performs the savings account creation.
func (uc *CreateSavingsAccountUseCase) Execute(ctx context.Context, input CreateSavingsAccountInput) (*CreateSavingsAccountOutput, error) {
	if err := validateSavingsAccountInput(input.Institution, input.Balance); err != nil {
		return nil, err
	}

	account := entity.NewSavingsAccount(input.UserID, input.Institution, input.AccountType, input.Balance, input.InterestRate)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, record.MutationError("failed to create savings account", err)
	}

	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, account)

	return &CreateSavingsAccountOutput{Account: account}, nil
}

// validateSavingsAccountInput rejects invalid fields before the store is touched.
func validateSavingsAccountInput(institution string, balance decimal.Decimal) error {
	if institution == "" {
		return record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"institution is required",
		)
	}
	if balance.IsNegative() {
		return record.InvalidAmount("balance must not be negative")
	}
	return nil
}
