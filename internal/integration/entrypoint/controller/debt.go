// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/debt"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	updateUseCase *debt.UpdateDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	debts := make([]dto.DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = dto.ToDebtResponse(d)
	}
	ctx.JSON(http.StatusOK, dto.DebtListResponse{Debts: debts})
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:         userID,
		Creditor:       req.Creditor,
		DebtType:       req.DebtType,
		Balance:        decimal.NewFromFloat(req.Balance),
		MonthlyPayment: optionalDecimal(req.MonthlyPayment),
		InterestRate:   req.InterestRate,
		PaymentDueDay:  req.PaymentDueDay,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid debt ID")
		return
	}

	var req dto.SaveDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		ID:             id,
		UserID:         userID,
		Creditor:       req.Creditor,
		DebtType:       req.DebtType,
		Balance:        decimal.NewFromFloat(req.Balance),
		MonthlyPayment: optionalDecimal(req.MonthlyPayment),
		InterestRate:   req.InterestRate,
		PaymentDueDay:  req.PaymentDueDay,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}
