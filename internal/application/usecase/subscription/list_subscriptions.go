// Package subscription contains subscription tracking use cases.
package subscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

const collectionName = "subscriptions"

// ListSubscriptionsInput represents the input for listing subscriptions.
type ListSubscriptionsInput struct {
	UserID uuid.UUID
}

// ListSubscriptionsOutput represents the output of listing subscriptions,
// ordered newest-first by creation time.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
}

// ListSubscriptionsUseCase handles subscription listing through the snapshot
// cache.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	cache            adapter.CollectionCache[*entity.Subscription]
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	cache adapter.CollectionCache[*entity.Subscription],
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
	}
}

// Execute performs the subscription listing.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subscriptions, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.Subscription, error) {
			return uc.subscriptionRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}
	return &ListSubscriptionsOutput{Subscriptions: subscriptions}, nil
}
