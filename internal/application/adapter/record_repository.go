// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// RecordRepository is the generic persistence contract shared by every
// user-owned entity collection. Each instantiation is backed by one store
// collection with a documented ordering for ListByUser.
type RecordRepository[E any] interface {
	// Create inserts a new record into the collection.
	Create(ctx context.Context, record *E) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// ListByUser retrieves every record owned by the given user, in the
	// collection's documented order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*E, error)

	// Update saves an existing record.
	Update(ctx context.Context, record *E) error

	// Delete removes a record from the collection (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository persists goals, listed newest-first by creation time.
type GoalRepository = RecordRepository[entity.Goal]

// SavingsAccountRepository persists savings accounts, listed newest-first by
// creation time.
type SavingsAccountRepository = RecordRepository[entity.SavingsAccount]

// DebtRepository persists debts, listed newest-first by creation time.
type DebtRepository = RecordRepository[entity.Debt]

// SubscriptionRepository persists subscriptions, listed newest-first by
// creation time.
type SubscriptionRepository = RecordRepository[entity.Subscription]

// InsurancePolicyRepository persists insurance policies, listed newest-first
// by creation time.
type InsurancePolicyRepository = RecordRepository[entity.InsurancePolicy]
