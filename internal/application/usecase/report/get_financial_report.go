// Package report derives financial summaries from the user's collections.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

// GetFinancialReportInput represents the input for the financial report.
type GetFinancialReportInput struct {
	UserID uuid.UUID
}

// GetFinancialReportOutput represents the derived financial report. All
// figures are computed from stored records on every request, never persisted.
type GetFinancialReportOutput struct {
	Totals           Totals
	NetWorth         decimal.Decimal
	SavingsRate      float64
	DebtToAssetRatio float64
	TopCategories    []CategoryShare
	Goals            GoalSummary
}

// GetFinancialReportUseCase assembles the report from the user's
// transactions, goals, savings accounts and debts, fetched concurrently.
type GetFinancialReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	accountRepo     adapter.SavingsAccountRepository
	debtRepo        adapter.DebtRepository
}

// NewGetFinancialReportUseCase creates a new GetFinancialReportUseCase instance.
func NewGetFinancialReportUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	accountRepo adapter.SavingsAccountRepository,
	debtRepo adapter.DebtRepository,
) *GetFinancialReportUseCase {
	return &GetFinancialReportUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		accountRepo:     accountRepo,
		debtRepo:        debtRepo,
	}
}

// Execute assembles the financial report.
func (uc *GetFinancialReportUseCase) Execute(ctx context.Context, input GetFinancialReportInput) (*GetFinancialReportOutput, error) {
	var (
		transactions []*entity.Transaction
		goals        []*entity.Goal
		accounts     []*entity.SavingsAccount
		debts        []*entity.Debt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = uc.goalRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = uc.accountRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		debts, err = uc.debtRepo.ListByUser(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, record.FetchError("failed to assemble financial report", err)
	}

	totals := SumTransactions(transactions)

	return &GetFinancialReportOutput{
		Totals:           totals,
		NetWorth:         NetWorth(accounts, debts),
		SavingsRate:      SavingsRate(totals),
		DebtToAssetRatio: DebtToAssetRatio(accounts, debts),
		TopCategories:    TopExpenseCategories(transactions, TopCategoryCount),
		Goals:            SummariseGoals(goals),
	}, nil
}
