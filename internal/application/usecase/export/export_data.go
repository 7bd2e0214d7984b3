// Package export assembles a full snapshot of the user's data.
package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

// ExportDataInput represents the input for a data export.
type ExportDataInput struct {
	UserID uuid.UUID
}

// ExportDataOutput carries every collection the user owns, gathered at one
// point in time.
type ExportDataOutput struct {
	ExportedAt    time.Time
	Transactions  []*entity.Transaction
	Goals         []*entity.Goal
	Accounts      []*entity.SavingsAccount
	Debts         []*entity.Debt
	Subscriptions []*entity.Subscription
	Policies      []*entity.InsurancePolicy
	TaxRecords    []*entity.TaxRecord
	BudgetPlans   []*entity.BudgetPlan
}

// ExportDataUseCase gathers every collection concurrently for download.
type ExportDataUseCase struct {
	transactionRepo  adapter.TransactionRepository
	goalRepo         adapter.GoalRepository
	accountRepo      adapter.SavingsAccountRepository
	debtRepo         adapter.DebtRepository
	subscriptionRepo adapter.SubscriptionRepository
	policyRepo       adapter.InsurancePolicyRepository
	taxRecordRepo    adapter.TaxRecordRepository
	budgetRepo       adapter.BudgetPlanRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	accountRepo adapter.SavingsAccountRepository,
	debtRepo adapter.DebtRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	policyRepo adapter.InsurancePolicyRepository,
	taxRecordRepo adapter.TaxRecordRepository,
	budgetRepo adapter.BudgetPlanRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		transactionRepo:  transactionRepo,
		goalRepo:         goalRepo,
		accountRepo:      accountRepo,
		debtRepo:         debtRepo,
		subscriptionRepo: subscriptionRepo,
		policyRepo:       policyRepo,
		taxRecordRepo:    taxRecordRepo,
		budgetRepo:       budgetRepo,
	}
}

// Execute gathers the export snapshot.
func (uc *ExportDataUseCase) Execute(ctx context.Context, input ExportDataInput) (*ExportDataOutput, error) {
	out := &ExportDataOutput{ExportedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Transactions, err = uc.transactionRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Goals, err = uc.goalRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Accounts, err = uc.accountRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Debts, err = uc.debtRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Subscriptions, err = uc.subscriptionRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Policies, err = uc.policyRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.TaxRecords, err = uc.taxRecordRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		out.BudgetPlans, err = uc.budgetRepo.ListByUser(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, record.FetchError("failed to export data", err)
	}

	return out, nil
}
