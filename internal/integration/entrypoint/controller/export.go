// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vault-finance/backend/internal/application/usecase/export"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
)

// ExportController handles the data export endpoint.
type ExportController struct {
	exportUseCase *export.ExportDataUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportDataUseCase) *ExportController {
	return &ExportController{exportUseCase: exportUseCase}
}

// Export handles GET /export requests.
func (c *ExportController) Export(ctx *gin.Context) {
	userID, ok := mustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportDataInput{UserID: userID})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExportResponse(output))
}
