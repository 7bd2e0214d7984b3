// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/vault-finance/backend/internal/domain/error"
	"github.com/vault-finance/backend/internal/integration/entrypoint/dto"
	"github.com/vault-finance/backend/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// parseDate parses a "YYYY-MM-DD" request field.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseOptionalDate parses an optional "YYYY-MM-DD" request field.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseMonth parses a "YYYY-MM" request field.
func parseMonth(value string) (time.Time, error) {
	return time.Parse("2006-01", value)
}

// optionalDecimal converts an optional float field to a decimal.
func optionalDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}

// mustUserID extracts the authenticated user's ID, aborting with 401 when the
// auth middleware did not run.
func mustUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return id, ok
}

// badRequest writes a 400 response for an unparseable request body.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeRecordMissingFields),
	})
}

// handleRecordError maps record errors to HTTP responses.
func handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(statusForRecordError(recordErr), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForRecordError maps record error codes to HTTP status codes.
func statusForRecordError(err *domainerror.RecordError) int {
	switch err.Code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecordUnauthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeRecordMissingFields,
		domainerror.ErrCodeRecordInvalidAmount,
		domainerror.ErrCodeRecordInvalidEnum,
		domainerror.ErrCodeRecordInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
