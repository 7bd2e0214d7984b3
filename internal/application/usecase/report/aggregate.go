// Package report derives financial summaries from the user's collections.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// TopCategoryCount is the number of expense categories reported.
const TopCategoryCount = 5

// Totals aggregates transaction amounts by direction. Income and Expenses
// are non-negative magnitudes; CashFlow is Income minus Expenses.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	CashFlow decimal.Decimal
}

// CategoryShare is one expense category's contribution to total expenses.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// SumTransactions computes income, expense and cash flow totals. The result
// equals the sum of every transaction's signed amount.
func SumTransactions(transactions []*entity.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Totals{
		Income:   income,
		Expenses: expenses,
		CashFlow: income.Sub(expenses),
	}
}

// NetWorth returns total savings balances minus total debt balances.
func NetWorth(accounts []*entity.SavingsAccount, debts []*entity.Debt) decimal.Decimal {
	assets := decimal.Zero
	for _, a := range accounts {
		assets = assets.Add(a.Balance)
	}
	liabilities := decimal.Zero
	for _, d := range debts {
		liabilities = liabilities.Add(d.Balance)
	}
	return assets.Sub(liabilities)
}

// SavingsRate returns cash flow as a percentage of income. Zero income
// yields zero, never a division error.
func SavingsRate(totals Totals) float64 {
	if totals.Income.IsZero() {
		return 0
	}
	rate, _ := totals.CashFlow.Div(totals.Income).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}

// DebtToAssetRatio returns total debt as a percentage of total assets. Zero
// assets yield zero, never a division error.
func DebtToAssetRatio(accounts []*entity.SavingsAccount, debts []*entity.Debt) float64 {
	assets := decimal.Zero
	for _, a := range accounts {
		assets = assets.Add(a.Balance)
	}
	if assets.IsZero() {
		return 0
	}
	liabilities := decimal.Zero
	for _, d := range debts {
		liabilities = liabilities.Add(d.Balance)
	}
	ratio, _ := liabilities.Div(assets).Mul(decimal.NewFromInt(100)).Float64()
	return ratio
}

// TopExpenseCategories aggregates expense amounts by category label and
// returns the top n by amount. Uncategorised transactions fall under the
// default label. The sort is stable: categories with equal amounts keep the
// order their first transaction appeared in.
func TopExpenseCategories(transactions []*entity.Transaction, n int) []CategoryShare {
	amounts := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero

	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		label := t.CategoryLabel()
		if _, seen := amounts[label]; !seen {
			order = append(order, label)
		}
		amounts[label] = amounts[label].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, label := range order {
		share := CategoryShare{Category: label, Amount: amounts[label]}
		if !total.IsZero() {
			share.Percentage, _ = share.Amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// GoalSummary counts goals by derived status.
type GoalSummary struct {
	Total     int
	Completed int
}

// SummariseGoals counts total and completed goals.
func SummariseGoals(goals []*entity.Goal) GoalSummary {
	summary := GoalSummary{Total: len(goals)}
	for _, g := range goals {
		if g.Status() == entity.GoalStatusCompleted {
			summary.Completed++
		}
	}
	return summary
}
