// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/insurance"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// InsurancePolicyController handles insurance policy endpoints.
type InsurancePolicyController struct {
	listUseCase   *insurance.ListPoliciesUseCase
	createUseCase *insurance.CreatePolicyUseCase
	updateUseCase *insurance.UpdatePolicyUseCase
}

// NewInsurancePolicyController creates a new insurance policy controller instance.
func NewInsurancePolicyController(
	listUseCase *insurance.ListPoliciesUseCase,
	createUseCase *insurance.CreatePolicyUseCase,
	updateUseCase *insurance.UpdatePolicyUseCase,
) *InsurancePolicyController {
	return &InsurancePolicyController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /insurance-policies requests.
func (c *InsurancePolicyController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insurance.ListPoliciesInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	policies := make([]dto.InsurancePolicyResponse, len(output.Policies))
	for i, p := range output.Policies {
		policies[i] = dto.ToInsurancePolicyResponse(p)
	}
	ctx.JSON(http.StatusOK, dto.InsurancePolicyListResponse{Policies: policies})
}

// Create handles POST /insurance-policies requests.
func (c *InsurancePolicyController) Create(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveInsurancePolicyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	renewalDate, err := parseOptionalDate(req.RenewalDate)
	if err != nil {
		badRequest(ctx, "renewal_date must use the YYYY-MM-DD format")
		return
	}
	lastClaimDate, err := parseOptionalDate(req.LastClaimDate)
	if err != nil {
		badRequest(ctx, "last_claim_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), insurance.CreatePolicyInput{
		UserID:         userID,
		PolicyType:     req.PolicyType,
		Provider:       req.Provider,
		CoverageAmount: optionalDecimal(req.CoverageAmount),
		MonthlyPremium: decimal.NewFromFloat(req.MonthlyPremium),
		RenewalDate:    renewalDate,
		Status:         entity.PolicyStatus(req.Status),
		LastClaimDate:  lastClaimDate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsurancePolicyResponse(output.Policy))
}

// Update handles PUT /insurance-policies/:id requests.
func (c *InsurancePolicyController) Update(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid insurance policy ID")
		return
	}

	var req dto.SaveInsurancePolicyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	renewalDate, err := parseOptionalDate(req.RenewalDate)
	if err != nil {
		badRequest(ctx, "renewal_date must use the YYYY-MM-DD format")
		return
	}
	lastClaimDate, err := parseOptionalDate(req.LastClaimDate)
	if err != nil {
		badRequest(ctx, "last_claim_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), insurance.UpdatePolicyInput{
		ID:             id,
		UserID:         userID,
		PolicyType:     req.PolicyType,
		Provider:       req.Provider,
		CoverageAmount: optionalDecimal(req.CoverageAmount),
		MonthlyPremium: decimal.NewFromFloat(req.MonthlyPremium),
		RenewalDate:    renewalDate,
		Status:         entity.PolicyStatus(req.Status),
		LastClaimDate:  lastClaimDate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsurancePolicyResponse(output.Policy))
}
