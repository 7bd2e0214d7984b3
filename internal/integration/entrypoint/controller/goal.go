// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/usecase/goal"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// GoalController handles financial goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = dto.ToGoalResponse(g)
	}
	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	targetDate, err := parseOptionalDate(req.TargetDate)
	if err != nil {
		badRequest(ctx, "target_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
		TargetDate:    targetDate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(&goal.GoalOutput{
		Goal:     output.Goal,
		Progress: output.Progress,
		Status:   output.Status,
	}))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid goal ID")
		return
	}

	var req dto.SaveGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	targetDate, err := parseOptionalDate(req.TargetDate)
	if err != nil {
		badRequest(ctx, "target_date must use the YYYY-MM-DD format")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		ID:            id,
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
		TargetDate:    targetDate,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(&goal.GoalOutput{
		Goal:     output.Goal,
		Progress: output.Progress,
		Status:   output.Status,
	}))
}
