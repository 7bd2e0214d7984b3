// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveInsurancePolicyRequest represents the request body for insurance policy
// creation and update.
type SaveInsurancePolicyRequest struct {
	PolicyType     string   `json:"policy_type,omitempty"`
	Provider       string   `json:"provider" binding:"required,min=1,max=255"`
	CoverageAmount *float64 `json:"coverage_amount,omitempty"`
	MonthlyPremium float64  `json:"monthly_premium" binding:"gte=0"`
	RenewalDate    *string  `json:"renewal_date,omitempty"`
	Status         string   `json:"status" binding:"required,oneof=active expired cancelled"`
	LastClaimDate  *string  `json:"last_claim_date,omitempty"`
}

// InsurancePolicyResponse represents an insurance policy in API responses.
type InsurancePolicyResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PolicyType     string    `json:"policy_type"`
	Provider       string    `json:"provider"`
	CoverageAmount *string   `json:"coverage_amount,omitempty"`
	MonthlyPremium string    `json:"monthly_premium"`
	RenewalDate    *string   `json:"renewal_date,omitempty"`
	Status         string    `json:"status"`
	LastClaimDate  *string   `json:"last_claim_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InsurancePolicyListResponse represents the response for listing policies.
type InsurancePolicyListResponse struct {
	Policies []InsurancePolicyResponse `json:"policies"`
}

// ToInsurancePolicyResponse converts an InsurancePolicy entity to a response DTO.
func ToInsurancePolicyResponse(p *entity.InsurancePolicy) InsurancePolicyResponse {
	response := InsurancePolicyResponse{
		ID:             p.ID.String(),
		UserID:         p.UserID.String(),
		PolicyType:     p.PolicyType,
		Provider:       p.Provider,
		MonthlyPremium: p.MonthlyPremium.String(),
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.CoverageAmount != nil {
		c := p.CoverageAmount.String()
		response.CoverageAmount = &c
	}
	if p.RenewalDate != nil {
		d := p.RenewalDate.Format("2006-01-02")
		response.RenewalDate = &d
	}
	if p.LastClaimDate != nil {
		d := p.LastClaimDate.Format("2006-01-02")
		response.LastClaimDate = &d
	}
	return response
}
