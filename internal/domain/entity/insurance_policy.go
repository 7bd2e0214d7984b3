// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyStatus represents the lifecycle state of an insurance policy.
type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

// InsurancePolicy represents an insurance policy held by the user.
type InsurancePolicy struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PolicyType     string
	Provider       string
	CoverageAmount *decimal.Decimal // Optional
	MonthlyPremium decimal.Decimal
	RenewalDate    *time.Time // Optional
	Status         PolicyStatus
	LastClaimDate  *time.Time // Optional
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewInsurancePolicy creates a new InsurancePolicy entity.
func NewInsurancePolicy(
	userID uuid.UUID,
	policyType string,
	provider string,
	coverageAmount *decimal.Decimal,
	monthlyPremium decimal.Decimal,
	renewalDate *time.Time,
	status PolicyStatus,
	lastClaimDate *time.Time,
) *InsurancePolicy {
	now := time.Now().UTC()

	return &InsurancePolicy{
		ID:             uuid.New(),
		UserID:         userID,
		PolicyType:     policyType,
		Provider:       provider,
		CoverageAmount: coverageAmount,
		MonthlyPremium: monthlyPremium,
		RenewalDate:    renewalDate,
		Status:         status,
		LastClaimDate:  lastClaimDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsValidPolicyStatus reports whether the given status is known.
func IsValidPolicyStatus(s PolicyStatus) bool {
	return s == PolicyStatusActive || s == PolicyStatusExpired || s == PolicyStatusCancelled
}
