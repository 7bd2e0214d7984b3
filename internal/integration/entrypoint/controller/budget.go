// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/budget"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget plan endpoints.
type BudgetController struct {
	listUseCase *budget.ListBudgetPlansUseCase
	saveUseCase *budget.SaveBudgetPlanUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetPlansUseCase,
	saveUseCase *budget.SaveBudgetPlanUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase: listUseCase,
		saveUseCase: saveUseCase,
	}
}

// List handles GET /budget-plans requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetPlansInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	plans := make([]dto.BudgetPlanResponse, len(output.Plans))
	for i, p := range output.Plans {
		plans[i] = dto.ToBudgetPlanResponse(p.Plan, p.SurplusDeficit, p.Outcome)
	}
	ctx.JSON(http.StatusOK, dto.BudgetPlanListResponse{Plans: plans})
}

// Save handles PUT /budget-plans requests. Writing an existing month
// replaces the plan.
func (c *BudgetController) Save(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveBudgetPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		badRequest(ctx, "month must use the YYYY-MM format")
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), budget.SaveBudgetPlanInput{
		UserID:               userID,
		MonthYear:            month,
		ProjectedIncome:      decimal.NewFromFloat(req.ProjectedIncome),
		ProjectedExpenditure: decimal.NewFromFloat(req.ProjectedExpenditure),
		ActualIncome:         optionalDecimal(req.ActualIncome),
		ActualExpenditure:    optionalDecimal(req.ActualExpenditure),
		Notes:                req.Notes,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanResponse(output.Plan, output.SurplusDeficit, output.Outcome))
}
