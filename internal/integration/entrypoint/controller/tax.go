// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/tax"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// TaxController handles tax record and deduction endpoints.
type TaxController struct {
	overviewUseCase     *tax.GetTaxOverviewUseCase
	createRecordUseCase *tax.CreateTaxRecordUseCase
	upsertUseCase       *tax.UpsertDeductionUseCase
}

// NewTaxController creates a new tax controller instance.
func NewTaxController(
	overviewUseCase *tax.GetTaxOverviewUseCase,
	createRecordUseCase *tax.CreateTaxRecordUseCase,
	upsertUseCase *tax.UpsertDeductionUseCase,
) *TaxController {
	return &TaxController{
		overviewUseCase:     overviewUseCase,
		createRecordUseCase: createRecordUseCase,
		upsertUseCase:       upsertUseCase,
	}
}

// Overview handles GET /tax requests. An optional ?year= query selects the
// deduction year; it defaults to the current calendar year.
func (c *TaxController) Overview(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var taxYear int
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(ctx, "year must be a positive integer")
			return
		}
		taxYear = parsed
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), tax.GetTaxOverviewInput{
		UserID:  userID,
		TaxYear: taxYear,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxOverviewResponse(output))
}

// CreateRecord handles POST /tax/records requests.
func (c *TaxController) CreateRecord(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTaxRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	submissionDate, err := parseOptionalDate(req.SubmissionDate)
	if err != nil {
		badRequest(ctx, "submission_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.createRecordUseCase.Execute(ctx.Request.Context(), tax.CreateTaxRecordInput{
		UserID:            userID,
		TaxYear:           req.TaxYear,
		TaxableIncome:     decimal.NewFromFloat(req.TaxableIncome),
		TaxPayable:        decimal.NewFromFloat(req.TaxPayable),
		DeductionsClaimed: decimal.NewFromFloat(req.DeductionsClaimed),
		RefundAmount:      decimal.NewFromFloat(req.RefundAmount),
		AmountOwing:       decimal.NewFromFloat(req.AmountOwing),
		SARSStatus:        entity.SARSStatus(req.SARSStatus),
		SubmissionDate:    submissionDate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaxRecordResponse(output.Record))
}

// UpsertDeduction handles PUT /tax/deductions requests.
func (c *TaxController) UpsertDeduction(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertDeductionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), tax.UpsertDeductionInput{
		UserID:        userID,
		TaxYear:       req.TaxYear,
		DeductionType: req.DeductionType,
		YTDAmount:     decimal.NewFromFloat(req.YTDAmount),
		AnnualLimit:   optionalDecimal(req.AnnualLimit),
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeductionResponse(output.Entry))
}
