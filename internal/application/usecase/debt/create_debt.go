// Package debt contains debt tracking use cases.
package debt

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID         uuid.UUID
	Creditor       string
	DebtType       string
	Balance        decimal.Decimal
	MonthlyPayment *decimal.Decimal
	InterestRate   *float64
	PaymentDueDay  *int
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	cache    adapter.CollectionCache[*entity.Debt]
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, cache adapter.CollectionCache[*entity.Debt]) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
		cache:    cache,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if err := validateDebtInput(input.Creditor, input.Balance, input.MonthlyPayment, input.PaymentDueDay); err != nil {
		return nil, err
	}

	debt := entity.NewDebt(
		input.UserID,
		input.Creditor,
		input.DebtType,
		input.Balance,
		input.MonthlyPayment,
		input.InterestRate,
		input.PaymentDueDay,
	)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, record.MutationError("failed to create debt", err)
	}

	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, debt)

	return &CreateDebtOutput{Debt: debt}, nil
}

// validateDebtInput rejects invalid fields before the store is touched.
func validateDebtInput(creditor string, balance decimal.Decimal, monthlyPayment *decimal.Decimal, paymentDueDay *int) error {
	if creditor == "" {
		return record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"creditor is required",
		)
	}
	if balance.IsNegative() {
		return record.InvalidAmount("balance must not be negative")
	}
	if monthlyPayment != nil && monthlyPayment.IsNegative() {
		return record.InvalidAmount("monthly payment must not be negative")
	}
	if paymentDueDay != nil && (*paymentDueDay < 1 || *paymentDueDay > 31) {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidDate,
			"payment due day must be between 1 and 31",
		)
	}
	return nil
}
