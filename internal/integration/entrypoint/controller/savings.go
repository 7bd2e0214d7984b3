// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/savings"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// SavingsAccountController handles savings account endpoints.
type SavingsAccountController struct {
	listUseCase   *savings.ListSavingsAccountsUseCase
	createUseCase *savings.CreateSavingsAccountUseCase
	updateUseCase *savings.UpdateSavingsAccountUseCase
}

// NewSavingsAccountController creates a new savings account controller instance.
func NewSavingsAccountController(
	listUseCase *savings.ListSavingsAccountsUseCase,
	createUseCase *savings.CreateSavingsAccountUseCase,
	updateUseCase *savings.UpdateSavingsAccountUseCase,
) *SavingsAccountController {
	return &SavingsAccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /savings-accounts requests.
func (c *SavingsAccountController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savings.ListSavingsAccountsInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	accounts := make([]dto.SavingsAccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = dto.ToSavingsAccountResponse(a)
	}
	ctx.JSON(http.StatusOK, dto.SavingsAccountListResponse{Accounts: accounts})
}

// Create handles POST /savings-accounts requests.
func (c *SavingsAccountController) Create(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveSavingsAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savings.CreateSavingsAccountInput{
		UserID:       userID,
		Institution:  req.Institution,
		AccountType:  req.AccountType,
		Balance:      decimal.NewFromFloat(req.Balance),
		InterestRate: req.InterestRate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsAccountResponse(output.Account))
}

// Update handles PUT /savings-accounts/:id requests.
func (c *SavingsAccountController) Update(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid savings account ID")
		return
	}

	var req dto.SaveSavingsAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), savings.UpdateSavingsAccountInput{
		ID:           id,
		UserID:       userID,
		Institution:  req.Institution,
		AccountType:  req.AccountType,
		Balance:      decimal.NewFromFloat(req.Balance),
		InterestRate: req.InterestRate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsAccountResponse(output.Account))
}
