// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vault-finance/backend/internal/application/usecase/report"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the financial report endpoint.
type ReportController struct {
	reportUseCase *report.GetFinancialReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(reportUseCase *report.GetFinancialReportUseCase) *ReportController {
	return &ReportController{reportUseCase: reportUseCase}
}

// Get handles GET /reports requests.
func (c *ReportController) Get(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.GetFinancialReportInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}
