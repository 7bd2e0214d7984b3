// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/subscription"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listUseCase   *subscription.ListSubscriptionsUseCase
	createUseCase *subscription.CreateSubscriptionUseCase
	updateUseCase *subscription.UpdateSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listUseCase *subscription.ListSubscriptionsUseCase,
	createUseCase *subscription.CreateSubscriptionUseCase,
	updateUseCase *subscription.UpdateSubscriptionUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), subscription.ListSubscriptionsInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	subscriptions := make([]dto.SubscriptionResponse, len(output.Subscriptions))
	for i, s := range output.Subscriptions {
		subscriptions[i] = dto.ToSubscriptionResponse(s)
	}
	ctx.JSON(http.StatusOK, dto.SubscriptionListResponse{Subscriptions: subscriptions})
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	renewalDate, err := parseOptionalDate(req.RenewalDate)
	if err != nil {
		badRequest(ctx, "renewal_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), subscription.CreateSubscriptionInput{
		UserID:       userID,
		ServiceName:  req.ServiceName,
		Amount:       decimal.NewFromFloat(req.Amount),
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		RenewalDate:  renewalDate,
		Status:       entity.SubscriptionStatus(req.Status),
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PUT /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid subscription ID")
		return
	}

	var req dto.SaveSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	renewalDate, err := parseOptionalDate(req.RenewalDate)
	if err != nil {
		badRequest(ctx, "renewal_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), subscription.UpdateSubscriptionInput{
		ID:           id,
		UserID:       userID,
		ServiceName:  req.ServiceName,
		Amount:       decimal.NewFromFloat(req.Amount),
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		RenewalDate:  renewalDate,
		Status:       entity.SubscriptionStatus(req.Status),
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}
