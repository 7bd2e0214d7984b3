// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/application/usecase/tax"
	"github.com/vault-finance/backend/internal/domain/entity"
)

// CreateTaxRecordRequest represents the request body for tax record creation.
type CreateTaxRecordRequest struct {
	TaxYear           int     `json:"tax_year" binding:"required,min=1900"`
	TaxableIncome     float64 `json:"taxable_income" binding:"gte=0"`
	TaxPayable        float64 `json:"tax_payable" binding:"gte=0"`
	DeductionsClaimed float64 `json:"deductions_claimed" binding:"gte=0"`
	RefundAmount      float64 `json:"refund_amount" binding:"gte=0"`
	AmountOwing       float64 `json:"amount_owing" binding:"gte=0"`
	SARSStatus        string  `json:"sars_status" binding:"required,oneof=pending submitted assessed closed"`
	SubmissionDate    *string `json:"submission_date,omitempty"`
}

// UpsertDeductionRequest represents the request body for writing a deduction
// entry. Entries are keyed by (tax year, deduction type).
type UpsertDeductionRequest struct {
	TaxYear       int      `json:"tax_year" binding:"required,min=1900"`
	DeductionType string   `json:"deduction_type" binding:"required,min=1,max=255"`
	YTDAmount     float64  `json:"ytd_amount" binding:"gte=0"`
	AnnualLimit   *float64 `json:"annual_limit,omitempty"`
}

// TaxRecordResponse represents a tax record in API responses.
type TaxRecordResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	TaxYear           int       `json:"tax_year"`
	TaxableIncome     string    `json:"taxable_income"`
	TaxPayable        string    `json:"tax_payable"`
	DeductionsClaimed string    `json:"deductions_claimed"`
	RefundAmount      string    `json:"refund_amount"`
	AmountOwing       string    `json:"amount_owing"`
	SARSStatus        string    `json:"sars_status"`
	SubmissionDate    *string   `json:"submission_date,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DeductionResponse represents a deduction entry in API responses. Remaining
// is the derived headroom under the annual limit.
type DeductionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TaxYear       int       `json:"tax_year"`
	DeductionType string    `json:"deduction_type"`
	YTDAmount     string    `json:"ytd_amount"`
	AnnualLimit   *string   `json:"annual_limit,omitempty"`
	Remaining     *string   `json:"remaining,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

// TaxOverviewResponse represents the combined tax overview.
type TaxOverviewResponse struct {
	TaxYear    int                 `json:"tax_year"`
	Records    []TaxRecordResponse `json:"records"`
	Deductions []DeductionResponse `json:"deductions"`
}

// ToTaxRecordResponse converts a TaxRecord entity to a response DTO.
func ToTaxRecordResponse(r *entity.TaxRecord) TaxRecordResponse {
	response := TaxRecordResponse{
		ID:                r.ID.String(),
		UserID:            r.UserID.String(),
		TaxYear:           r.TaxYear,
		TaxableIncome:     r.TaxableIncome.String(),
		TaxPayable:        r.TaxPayable.String(),
		DeductionsClaimed: r.DeductionsClaimed.String(),
		RefundAmount:      r.RefundAmount.String(),
		AmountOwing:       r.AmountOwing.String(),
		SARSStatus:        string(r.SARSStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.SubmissionDate != nil {
		d := r.SubmissionDate.Format("2006-01-02")
		response.SubmissionDate = &d
	}
	return response
}

// ToDeductionResponse converts a DeductionEntry entity to a response DTO.
func ToDeductionResponse(e *entity.DeductionEntry) DeductionResponse {
	response := DeductionResponse{
		ID:            e.ID.String(),
		UserID:        e.UserID.String(),
		TaxYear:       e.TaxYear,
		DeductionType: e.DeductionType,
		YTDAmount:     e.YTDAmount.String(),
		LastUpdated:   e.LastUpdated,
	}
	if e.AnnualLimit != nil {
		l := e.AnnualLimit.String()
		response.AnnualLimit = &l
	}
	if remaining := e.Remaining(); remaining != nil {
		r := remaining.String()
		response.Remaining = &r
	}
	return response
}

// ToTaxOverviewResponse converts the tax overview output to a response DTO.
func ToTaxOverviewResponse(out *tax.GetTaxOverviewOutput) TaxOverviewResponse {
	records := make([]TaxRecordResponse, len(out.Records))
	for i, r := range out.Records {
		records[i] = ToTaxRecordResponse(r)
	}
	deductions := make([]DeductionResponse, len(out.Deductions))
	for i, e := range out.Deductions {
		deductions[i] = ToDeductionResponse(e)
	}
	return TaxOverviewResponse{
		TaxYear:    out.TaxYear,
		Records:    records,
		Deductions: deductions,
	}
}
