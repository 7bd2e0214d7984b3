// Package insurance contains insurance policy use cases.
package insurance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// UpdatePolicyInput represents the input for insurance policy update.
type UpdatePolicyInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PolicyType     string
	Provider       string
	CoverageAmount *decimal.Decimal
	MonthlyPremium decimal.Decimal
	RenewalDate    *time.Time
	Status         entity.PolicyStatus
	LastClaimDate  *time.Time
}

// UpdatePolicyOutput represents the output of insurance policy update.
type UpdatePolicyOutput struct {
	Policy *entity.InsurancePolicy
}

// UpdatePolicyUseCase handles insurance policy update logic.
type UpdatePolicyUseCase struct {
	policyRepo adapter.InsurancePolicyRepository
	cache      adapter.CollectionCache[*entity.InsurancePolicy]
}

// NewUpdatePolicyUseCase creates a new UpdatePolicyUseCase instance.
func NewUpdatePolicyUseCase(
	policyRepo adapter.InsurancePolicyRepository,
	cache adapter.CollectionCache[*entity.InsurancePolicy],
) *UpdatePolicyUseCase {
	return &UpdatePolicyUseCase{
		policyRepo: policyRepo,
		cache:      cache,
	}
}

// Execute performs the insurance policy update.
func (uc *UpdatePolicyUseCase) Execute(ctx context.Context, input UpdatePolicyInput) (*UpdatePolicyOutput, error) {
	if err := validatePolicyInput(input.Provider, input.MonthlyPremium, input.CoverageAmount, input.Status); err != nil {
		return nil, err
	}

	existing, err := uc.policyRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("insurance policy not found")
		}
		return nil, record.FetchError("failed to find insurance policy", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("insurance policy belongs to another user")
	}

	existing.PolicyType = input.PolicyType
	existing.Provider = input.Provider
	existing.CoverageAmount = input.CoverageAmount
	existing.MonthlyPremium = input.MonthlyPremium
	existing.RenewalDate = input.RenewalDate
	existing.Status = input.Status
	existing.LastClaimDate = input.LastClaimDate
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.policyRepo.Update(ctx, existing); err != nil {
		return nil, record.MutationError("failed to update insurance policy", err)
	}

	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdatePolicyOutput{Policy: existing}, nil
}
