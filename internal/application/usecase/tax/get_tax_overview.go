// Package tax contains tax record and deduction tracker use cases.
package tax

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "tax_records"

// GetTaxOverviewInput represents the input for the tax overview. TaxYear
// selects the deduction tracker year; zero means the current year.
type GetTaxOverviewInput struct {
	UserID  uuid.UUID
	TaxYear int
}

// GetTaxOverviewOutput represents the output of the tax overview.
type GetTaxOverviewOutput struct {
	Records    []*entity.TaxRecord
	Deductions []*entity.DeductionEntry
	TaxYear    int
}

// GetTaxOverviewUseCase fetches tax records and the selected year's deduction
// entries concurrently.
type GetTaxOverviewUseCase struct {
	taxRecordRepo adapter.TaxRecordRepository
	deductionRepo adapter.DeductionRepository
	cache         adapter.CollectionCache[*entity.TaxRecord]
}

// NewGetTaxOverviewUseCase creates a new GetTaxOverviewUseCase instance.
func NewGetTaxOverviewUseCase(
	taxRecordRepo adapter.TaxRecordRepository,
	deductionRepo adapter.DeductionRepository,
	cache adapter.CollectionCache[*entity.TaxRecord],
) *GetTaxOverviewUseCase {
	return &GetTaxOverviewUseCase{
		taxRecordRepo: taxRecordRepo,
		deductionRepo: deductionRepo,
		cache:         cache,
	}
}

// Execute performs the tax overview fetch.
func (uc *GetTaxOverviewUseCase) Execute(ctx context.Context, input GetTaxOverviewInput) (*GetTaxOverviewOutput, error) {
	taxYear := input.TaxYear
	if taxYear == 0 {
		taxYear = time.Now().UTC().Year()
	}

	var (
		records    []*entity.TaxRecord
		deductions []*entity.DeductionEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = record.ListThroughCache(gctx, uc.cache, collectionName, input.UserID,
			func(ctx context.Context) ([]*entity.TaxRecord, error) {
				return uc.taxRecordRepo.ListByUser(ctx, input.UserID)
			})
		return err
	})
	g.Go(func() error {
		var err error
		deductions, err = uc.deductionRepo.ListByUserAndYear(gctx, input.UserID, taxYear)
		if err != nil {
			return record.FetchError("failed to list deductions", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetTaxOverviewOutput{
		Records:    records,
		Deductions: deductions,
		TaxYear:    taxYear,
	}, nil
}
