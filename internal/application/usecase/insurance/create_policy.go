// Package insurance contains insurance policy use cases.
package insurance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// CreatePolicyInput represents the input for insurance policy creation.
type CreatePolicyInput struct {
	UserID         uuid.UUID
	PolicyType     string
	Provider       string
	CoverageAmount *decimal.Decimal
	MonthlyPremium decimal.Decimal
	RenewalDate    *time.Time
	Status         entity.PolicyStatus
	LastClaimDate  *time.Time
}

// CreatePolicyOutput represents the output of insurance policy creation.
type CreatePolicyOutput struct {
	Policy *entity.InsurancePolicy
}

// CreatePolicyUseCase handles insurance policy creation logic.
type CreatePolicyUseCase struct {
	policyRepo adapter.InsurancePolicyRepository
	cache      adapter.CollectionCache[*entity.InsurancePolicy]
}

// NewCreatePolicyUseCase creates a new CreatePolicyUseCase instance.
func NewCreatePolicyUseCase(
	policyRepo adapter.InsurancePolicyRepository,
	cache adapter.CollectionCache[*entity.InsurancePolicy],
) *CreatePolicyUseCase {
	return &CreatePolicyUseCase{
		policyRepo: policyRepo,
		cache:      cache,
	}
}

// Execute performs the insurance policy creation.
func (uc *CreatePolicyUseCase) Execute(ctx context.Context, input CreatePolicyInput) (*CreatePolicyOutput, error) {
	if err := validatePolicyInput(input.Provider, input.MonthlyPremium, input.CoverageAmount, input.Status); err != nil {
		return nil, err
	}

	policy := entity.NewInsurancePolicy(
		input.UserID,
		input.PolicyType,
		input.Provider,
		input.CoverageAmount,
		input.MonthlyPremium,
		input.RenewalDate,
		input.Status,
		input.LastClaimDate,
	)

	if err := uc.policyRepo.Create(ctx, policy); err != nil {
		return nil, record.MutationError("failed to create insurance policy", err)
	}

	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, policy)

	return &CreatePolicyOutput{Policy: policy}, nil
}

// validatePolicyInput rejects invalid fields before the store is touched.
func validatePolicyInput(provider string, monthlyPremium decimal.Decimal, coverageAmount *decimal.Decimal, status entity.PolicyStatus) error {
	if provider == "" {
		return record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"provider is required",
		)
	}
	if monthlyPremium.IsNegative() {
		return record.InvalidAmount("monthly premium must not be negative")
	}
	if coverageAmount != nil && coverageAmount.IsNegative() {
		return record.InvalidAmount("coverage amount must not be negative")
	}
	if !entity.IsValidPolicyStatus(status) {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidEnum,
			"status must be 'active', 'expired' or 'cancelled'",
		)
	}
	return nil
}
