// Package tax contains tax record and deduction tracker use cases.
package tax

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

// CreateTaxRecordInput represents the input for tax record creation. At most
// one of RefundAmount and AmountOwing may be non-zero.
type CreateTaxRecordInput struct {
	UserID            uuid.UUID
	TaxYear           int
	TaxableIncome     decimal.Decimal
	TaxPayable        decimal.Decimal
	DeductionsClaimed decimal.Decimal
	RefundAmount      decimal.Decimal
	AmountOwing       decimal.Decimal
	SARSStatus        entity.SARSStatus
	SubmissionDate    *time.Time
}

// CreateTaxRecordOutput represents the output of tax record creation.
type CreateTaxRecordOutput struct {
	Record *entity.TaxRecord
}

// CreateTaxRecordUseCase handles tax record creation logic.
type CreateTaxRecordUseCase struct {
	taxRecordRepo adapter.TaxRecordRepository
	cache         adapter.CollectionCache[*entity.TaxRecord]
}

// NewCreateTaxRecordUseCase creates a new CreateTaxRecordUseCase instance.
func NewCreateTaxRecordUseCase(
	taxRecordRepo adapter.TaxRecordRepository,
	cache adapter.CollectionCache[*entity.TaxRecord],
) *CreateTaxRecordUseCase {
	return &CreateTaxRecordUseCase{
		taxRecordRepo: taxRecordRepo,
		cache:         cache,
	}
}

// Execute performs the tax record creation.
func (uc *CreateTaxRecordUseCase) Execute(ctx context.Context, input CreateTaxRecordInput) (*CreateTaxRecordOutput, error) {
	if input.TaxYear <= 0 {
		return nil, record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"tax year is required",
		)
	}
	for _, amount := range []decimal.Decimal{
		input.TaxableIncome, input.TaxPayable, input.DeductionsClaimed,
		input.RefundAmount, input.AmountOwing,
	} {
		if amount.IsNegative() {
			return nil, record.InvalidAmount("tax figures must not be negative")
		}
	}
	if input.RefundAmount.IsPositive() && input.AmountOwing.IsPositive() {
		return nil, record.Validation(
			domainerror.ErrCodeRecordInvalidAmount,
			"a record cannot carry both a refund and an amount owing",
		)
	}
	if !entity.IsValidSARSStatus(input.SARSStatus) {
		return nil, record.Validation(
			domainerror.ErrCodeRecordInvalidEnum,
			"SARS status must be 'pending', 'submitted', 'assessed' or 'closed'",
		)
	}

	taxRecord := entity.NewTaxRecord(
		input.UserID,
		input.TaxYear,
		input.TaxableIncome,
		input.TaxPayable,
		input.DeductionsClaimed,
		input.RefundAmount,
		input.AmountOwing,
		input.SARSStatus,
		input.SubmissionDate,
	)

	if err := uc.taxRecordRepo.Create(ctx, taxRecord); err != nil {
		return nil, record.MutationError("failed to create tax record", err)
	}

	// Tax records list by year, not creation time, so drop the snapshot
	// instead of prepending out of order.
	record.CachePurge(ctx, uc.cache, collectionName, input.UserID)

	return &CreateTaxRecordOutput{Record: taxRecord}, nil
}
