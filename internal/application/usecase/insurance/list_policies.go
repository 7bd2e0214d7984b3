// Package insurance contains insurance policy use cases.
package insurance

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "insurance_policies"

// ListPoliciesInput represents the input for listing insurance policies.
type ListPoliciesInput struct {
	UserID uuid.UUID
}

// ListPoliciesOutput represents the output of listing insurance policies,
// ordered newest-first by creation time.
type ListPoliciesOutput struct {
	Policies []*entity.InsurancePolicy
}

// ListPoliciesUseCase handles insurance policy listing through the snapshot
// cache.
type ListPoliciesUseCase struct {
	policyRepo adapter.InsurancePolicyRepository
	cache      adapter.CollectionCache[*entity.InsurancePolicy]
}

// NewListPoliciesUseCase creates a new ListPoliciesUseCase instance.
func NewListPoliciesUseCase(
	policyRepo adapter.InsurancePolicyRepository,
	cache adapter.CollectionCache[*entity.InsurancePolicy],
) *ListPoliciesUseCase {
	return &ListPoliciesUseCase{
		policyRepo: policyRepo,
		cache:      cache,
	}
}

// Execute performs the insurance policy listing.
func (uc *ListPoliciesUseCase) Execute(ctx context.Context, input ListPoliciesInput) (*ListPoliciesOutput, error) {
	policies, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.InsurancePolicy, error) {
			return uc.policyRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}
	return &ListPoliciesOutput{Policies: policies}, nil
}
