// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vault-finance/backend/internal/application/usecase/alert"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// AlertController handles the derived alerts endpoint.
type AlertController struct {
	alertsUseCase *alert.GetAlertsUseCase
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(alertsUseCase *alert.GetAlertsUseCase) *AlertController {
	return &AlertController{alertsUseCase: alertsUseCase}
}

// List handles GET /alerts requests.
func (c *AlertController) List(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.alertsUseCase.Execute(ctx.Request.Context(), alert.GetAlertsInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output.Alerts))
}
