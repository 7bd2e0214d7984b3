// Package debt contains debt tracking use cases.
package debt

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

// UpdateDebtInput represents the input for debt update.
type UpdateDebtInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Creditor       string
	DebtType       string
	Balance        decimal.Decimal
	MonthlyPayment *decimal.Decimal
	InterestRate   *float64
	PaymentDueDay  *int
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles debt update logic.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	cache    adapter.CollectionCache[*entity.Debt]
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository, cache adapter.CollectionCache[*entity.Debt]) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
		cache:    cache,
	}
}

// Execute performs the debt update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	if err := validateDebtInput(input.Creditor, input.Balance, input.MonthlyPayment, input.PaymentDueDay); err != nil {
		return nil, err
	}

	existing, err := uc.debtRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("debt not found")
		}
		return nil, record.FetchError("failed to find debt", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("debt belongs to another user")
	}

	existing.Creditor = input.Creditor
	existing.DebtType = input.DebtType
	existing.Balance = input.Balance
	existing.MonthlyPayment = input.MonthlyPayment
	existing.InterestRate = input.InterestRate
	existing.PaymentDueDay = input.PaymentDueDay
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, existing); err != nil {
		return nil, record.MutationError("failed to update debt", err)
	}

	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdateDebtOutput{Debt: existing}, nil
}
