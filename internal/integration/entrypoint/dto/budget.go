// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveBudgetPlanRequest represents the request body for writing a month's
// budget plan. Month is "YYYY-MM"; writing an existing month replaces it.
type SaveBudgetPlanRequest struct {
	Month                string   `json:"month" binding:"required"`
	ProjectedIncome      float64  `json:"projected_income" binding:"gte=0"`
	ProjectedExpenditure float64  `json:"projected_expenditure" binding:"gte=0"`
	ActualIncome         *float64 `json:"actual_income,omitempty"`
	ActualExpenditure    *float64 `json:"actual_expenditure,omitempty"`
	Notes                string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// BudgetPlanResponse represents a budget plan in API responses, including the
// surplus and outcome derived on every read.
type BudgetPlanResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Month                string    `json:"month"`
	ProjectedIncome      string    `json:"projected_income"`
	ProjectedExpenditure string    `json:"projected_expenditure"`
	ActualIncome         *string   `json:"actual_income,omitempty"`
	ActualExpenditure    *string   `json:"actual_expenditure,omitempty"`
	SurplusDeficit       string    `json:"surplus_deficit"`
	Outcome              string    `json:"outcome"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// BudgetPlanListResponse represents the response for listing budget plans.
type BudgetPlanListResponse struct {
	Plans []BudgetPlanResponse `json:"plans"`
}

// ToBudgetPlanResponse converts a budget plan and its derived figures to a
// response DTO.
func ToBudgetPlanResponse(p *entity.BudgetPlan, surplus decimal.Decimal, outcome entity.BudgetOutcome) BudgetPlanResponse {
	response := BudgetPlanResponse{
		ID:                   p.ID.String(),
		UserID:               p.UserID.String(),
		Month:                p.MonthYear.Format("2006-01"),
		ProjectedIncome:      p.ProjectedIncome.String(),
		ProjectedExpenditure: p.ProjectedExpenditure.String(),
		SurplusDeficit:       surplus.String(),
		Outcome:              string(outcome),
		Notes:                p.Notes,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.ActualIncome != nil {
		v := p.ActualIncome.String()
		response.ActualIncome = &v
	}
	if p.ActualExpenditure != nil {
		v := p.ActualExpenditure.String()
		response.ActualExpenditure = &v
	}
	return response
}
