// Package subscription contains subscription tracking use cases.
package subscription

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

// CreateSubscriptionInput represents the input for subscription creation.
type CreateSubscriptionInput struct {
	UserID       uuid.UUID
	ServiceName  string
	Amount       decimal.Decimal
	BillingCycle entity.BillingCycle
	RenewalDate  *time.Time
	Status       entity.SubscriptionStatus
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	cache            adapter.CollectionCache[*entity.Subscription]
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	cache adapter.CollectionCache[*entity.Subscription],
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
	}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	if err := validateSubscriptionInput(input.ServiceName, input.Amount, input.BillingCycle, input.Status); err != nil {
		return nil, err
	}

	subscription := entity.NewSubscription(
		input.UserID,
		input.ServiceName,
		input.Amount,
		input.BillingCycle,
		input.RenewalDate,
		input.Status,
	)

	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, record.MutationError("failed to create subscription", err)
	}

	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, subscription)

	return &CreateSubscriptionOutput{Subscription: subscription}, nil
}

// validateSubscriptionInput rejects invalid fields before the store is touched.
func validateSubscriptionInput(serviceName string, amount decimal.Decimal, billingCycle entity.BillingCycle, status entity.SubscriptionStatus) error {
	if serviceName == "" {
		return record.Validation(
			domainerror.ErrCodeRecordMissingFields,
			"service name is required",
		)
	}
	if amount.IsNegative() {
		return record.InvalidAmount("amount must not be negative")
	}
	if !entity.IsValidBillingCycle(billingCycle) {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidEnum,
			"billing cycle must be 'monthly', 'quarterly' or 'annually'",
		)
	}
	if !entity.IsValidSubscriptionStatus(status) {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidEnum,
			"status must be 'active', 'cancelled' or 'paused'",
		)
	}
	return nil
}
