// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vault-finance/backend/internal/application/usecase/report"
)

// CategoryShareResponse represents one expense category's share of spending.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// GoalSummaryResponse represents goal counts in the report.
type GoalSummaryResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// ReportResponse represents the derived financial report.
type ReportResponse struct {
	IncomeTotal      string                  `json:"income_total"`
	ExpenseTotal     string                  `json:"expense_total"`
	CashFlow         string                  `json:"cash_flow"`
	NetWorth         string                  `json:"net_worth"`
	SavingsRate      float64                 `json:"savings_rate"`
	DebtToAssetRatio float64                 `json:"debt_to_asset_ratio"`
	TopCategories    []CategoryShareResponse `json:"top_categories"`
	Goals            GoalSummaryResponse     `json:"goals"`
}

// ToReportResponse converts the report output to a response DTO.
func ToReportResponse(out *report.GetFinancialReportOutput) ReportResponse {
	categories := make([]CategoryShareResponse, len(out.TopCategories))
	for i, c := range out.TopCategories {
		categories[i] = CategoryShareResponse{
			Category:   c.Category,
			Amount:     c.Amount.String(),
			Percentage: c.Percentage,
		}
	}
	return ReportResponse{
		IncomeTotal:      out.Totals.Income.String(),
		ExpenseTotal:     out.Totals.Expenses.String(),
		CashFlow:         out.Totals.CashFlow.String(),
		NetWorth:         out.NetWorth.String(),
		SavingsRate:      out.SavingsRate,
		DebtToAssetRatio: out.DebtToAssetRatio,
		TopCategories:    categories,
		Goals: GoalSummaryResponse{
			Total:     out.Goals.Total,
			Completed: out.Goals.Completed,
		},
	}
}
