// Package report derives financial summaries from the user's collections.
package report

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
)

func expense(userID uuid.UUID, amount int64, category string) *entity.Transaction {
	date := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewTransaction(userID, date, entity.TransactionTypeExpense, decimal.NewFromInt(amount), category, "")
}

func income(userID uuid.UUID, amount int64) *entity.Transaction {
	date := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewTransaction(userID, date, entity.TransactionTypeIncome, decimal.NewFromInt(amount), "Salary", "")
}

func TestSumTransactions(t *testing.T) {
	userID := uuid.New()

	t.Run("splits totals by direction", func(t *testing.T) {
		txs := []*entity.Transaction{
			income(userID, 25000),
			expense(userID, 1250, "Groceries"),
			expense(userID, 850, "Transport"),
		}

		totals := SumTransactions(txs)
		if !totals.Income.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("expected income 25000, got %s", totals.Income)
		}
		if !totals.Expenses.Equal(decimal.NewFromInt(2100)) {
			t.Errorf("expected expenses 2100, got %s", totals.Expenses)
		}
		if !totals.CashFlow.Equal(decimal.NewFromInt(22900)) {
			t.Errorf("expected cash flow 22900, got %s", totals.CashFlow)
		}
	})

	t.Run("cash flow equals the signed sum", func(t *testing.T) {
		txs := []*entity.Transaction{
			income(userID, 9000),
			expense(userID, 4200, "Rent"),
			income(userID, 300),
			expense(userID, 75, "Coffee"),
		}

		signed := decimal.Zero
		for _, tx := range txs {
			signed = signed.Add(tx.SignedAmount())
		}

		totals := SumTransactions(txs)
		if !totals.CashFlow.Equal(signed) {
			t.Errorf("cash flow %s does not equal signed sum %s", totals.CashFlow, signed)
		}
	})

	t.Run("empty slice yields zero totals", func(t *testing.T) {
		totals := SumTransactions(nil)
		if !totals.Income.IsZero() || !totals.Expenses.IsZero() || !totals.CashFlow.IsZero() {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})
}

func TestNetWorth(t *testing.T) {
	userID := uuid.New()

	accounts := []*entity.SavingsAccount{
		entity.NewSavingsAccount(userID, "FNB", "savings", decimal.NewFromInt(50000), nil),
		entity.NewSavingsAccount(userID, "Capitec", "fixed", decimal.NewFromInt(30000), nil),
	}
	debts := []*entity.Debt{
		entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, nil),
	}

	if got := NetWorth(accounts, debts); !got.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("expected net worth 60000, got %s", got)
	}
}

func TestSavingsRate(t *testing.T) {
	t.Run("rate is cash flow over income", func(t *testing.T) {
		totals := Totals{
			Income:   decimal.NewFromInt(25000),
			Expenses: decimal.NewFromInt(2100),
			CashFlow: decimal.NewFromInt(22900),
		}

		rate := SavingsRate(totals)
		if math.Abs(rate-91.6) > 0.001 {
			t.Errorf("expected savings rate 91.6, got %f", rate)
		}
	})

	t.Run("zero income yields zero", func(t *testing.T) {
		totals := Totals{Expenses: decimal.NewFromInt(500), CashFlow: decimal.NewFromInt(-500)}

		if rate := SavingsRate(totals); rate != 0 {
			t.Errorf("expected savings rate 0, got %f", rate)
		}
	})
}

func TestDebtToAssetRatio(t *testing.T) {
	userID := uuid.New()

	t.Run("ratio is debt over assets", func(t *testing.T) {
		accounts := []*entity.SavingsAccount{
			entity.NewSavingsAccount(userID, "FNB", "savings", decimal.NewFromInt(80000), nil),
		}
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, nil),
		}

		ratio := DebtToAssetRatio(accounts, debts)
		if math.Abs(ratio-25) > 0.001 {
			t.Errorf("expected ratio 25, got %f", ratio)
		}
	})

	t.Run("zero assets yield zero", func(t *testing.T) {
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, nil),
		}

		if ratio := DebtToAssetRatio(nil, debts); ratio != 0 {
			t.Errorf("expected ratio 0, got %f", ratio)
		}
	})
}

func TestTopExpenseCategories(t *testing.T) {
	userID := uuid.New()

	t.Run("sorts by amount and truncates", func(t *testing.T) {
		txs := []*entity.Transaction{
			income(userID, 25000),
			expense(userID, 100, "A"),
			expense(userID, 500, "B"),
			expense(userID, 200, "C"),
			expense(userID, 300, "D"),
			expense(userID, 400, "E"),
			expense(userID, 50, "F"),
		}

		shares := TopExpenseCategories(txs, TopCategoryCount)
		if len(shares) != 5 {
			t.Fatalf("expected 5 categories, got %d", len(shares))
		}
		want := []string{"B", "E", "D", "C", "A"}
		for i, label := range want {
			if shares[i].Category != label {
				t.Errorf("position %d: expected %q, got %q", i, label, shares[i].Category)
			}
		}
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		txs := []*entity.Transaction{
			expense(userID, 100, "B"),
			expense(userID, 100, "A"),
			expense(userID, 100, "C"),
		}

		shares := TopExpenseCategories(txs, TopCategoryCount)
		want := []string{"B", "A", "C"}
		for i, label := range want {
			if shares[i].Category != label {
				t.Errorf("position %d: expected %q, got %q", i, label, shares[i].Category)
			}
		}
	})

	t.Run("uncategorised expenses fall under the default label", func(t *testing.T) {
		txs := []*entity.Transaction{
			expense(userID, 300, ""),
			expense(userID, 100, "Transport"),
		}

		shares := TopExpenseCategories(txs, TopCategoryCount)
		if shares[0].Category != entity.DefaultCategory {
			t.Errorf("expected %q first, got %q", entity.DefaultCategory, shares[0].Category)
		}
		if math.Abs(shares[0].Percentage-75) > 0.001 {
			t.Errorf("expected percentage 75, got %f", shares[0].Percentage)
		}
	})

	t.Run("income never contributes", func(t *testing.T) {
		txs := []*entity.Transaction{income(userID, 25000)}

		if shares := TopExpenseCategories(txs, TopCategoryCount); len(shares) != 0 {
			t.Errorf("expected no categories, got %d", len(shares))
		}
	})
}

func TestSummariseGoals(t *testing.T) {
	userID := uuid.New()

	goals := []*entity.Goal{
		entity.NewGoal(userID, "Done", decimal.NewFromInt(100), decimal.NewFromInt(100), nil),
		entity.NewGoal(userID, "Halfway", decimal.NewFromInt(100), decimal.NewFromInt(50), nil),
		entity.NewGoal(userID, "Overfunded", decimal.NewFromInt(100), decimal.NewFromInt(120), nil),
	}

	summary := SummariseGoals(goals)
	if summary.Total != 3 {
		t.Errorf("expected 3 goals, got %d", summary.Total)
	}
	if summary.Completed != 2 {
		t.Errorf("expected 2 completed, got %d", summary.Completed)
	}
}
