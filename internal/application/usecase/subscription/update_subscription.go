// Package subscription contains subscription tracking use cases.
package subscription

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

// UpdateSubscriptionInput represents the input for subscription update.
type UpdateSubscriptionInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ServiceName  string
	Amount       decimal.Decimal
	BillingCycle entity.BillingCycle
	RenewalDate  *time.Time
	Status       entity.SubscriptionStatus
}

// UpdateSubscriptionOutput represents the output of subscription update.
type UpdateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// UpdateSubscriptionUseCase handles subscription update logic.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	cache            adapter.CollectionCache[*entity.Subscription]
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	cache adapter.CollectionCache[*entity.Subscription],
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
	}
}

// Execute performs the subscription update.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	if err := validateSubscriptionInput(input.ServiceName, input.Amount, input.BillingCycle, input.Status); err != nil {
		return nil, err
	}

	existing, err := uc.subscriptionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("subscription not found")
		}
		return nil, record.FetchError("failed to find subscription", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("subscription belongs to another user")
	}

	existing.ServiceName = input.ServiceName
	existing.Amount = input.Amount
	existing.BillingCycle = input.BillingCycle
	existing.RenewalDate = input.RenewalDate
	existing.Status = input.Status
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, existing); err != nil {
		return nil, record.MutationError("failed to update subscription", err)
	}

	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdateSubscriptionOutput{Subscription: existing}, nil
}
