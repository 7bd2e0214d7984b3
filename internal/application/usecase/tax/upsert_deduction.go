// Package tax contains tax record and deduction tracker use cases.
package tax

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// UpsertDeductionInput represents the input for writing a deduction entry.
type UpsertDeductionInput struct {
	UserID        uuid.UUID
	TaxYear       int
	DeductionType string
	YTDAmount     decimal.Decimal
	AnnualLimit   *decimal.Decimal
}

// UpsertDeductionOutput represents the output of writing a deduction entry.
type UpsertDeductionOutput struct {
	Entry     *entity.DeductionEntry
	Remaining *decimal.Decimal
}

// UpsertDeductionUseCase writes a deduction entry keyed by (user, tax year,
// deduction type). Writing an existing key replaces the entry rather than
// adding a duplicate.
type UpsertDeductionUseCase struct {
	deductionRepo adapter.DeductionRepository
}

// NewUpsertDeductionUseCase creates a new UpsertDeductionUseCase instance.
func NewUpsertDeductionUseCase(deductionRepo adapter.DeductionRepository) *UpsertDeductionUseCase {
	return &UpsertDeductionUseCase{
		deductionRepo: deductionRepo,
	}
}

// Execute performs the deduction entry write.
func (uc *UpsertDeductionUseCase) Execute(ctx context.Context, input UpsertDeductionInput) (*UpsertDeductionOutput, error) {
	if input.TaxYear <= 0 || input.DeductionType == "" {
		return nil, record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"tax year and deduction type are required",
		)
	}
	if input.YTDAmount.IsNegative() {
		return nil, record.InvalidAmount("year-to-date amount must not be negative")
	}
	if input.AnnualLimit != nil && input.AnnualLimit.IsNegative() {
		return nil, record.InvalidAmount("annual limit must not be negative")
	}

	entry := entity.NewDeductionEntry(input.UserID, input.TaxYear, input.DeductionType, input.YTDAmount, input.AnnualLimit)

	saved, err := uc.deductionRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, record.MutationError("failed to save deduction entry", err)
	}

	return &UpsertDeductionOutput{
		Entry:     saved,
		Remaining: saved.Remaining(),
	}, nil
}
