// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// BudgetPlanRepository defines the interface for budget plan persistence.
// Plans are listed by month descending.
type BudgetPlanRepository interface {
	// Create inserts a new budget plan.
	Create(ctx context.Context, plan *entity.BudgetPlan) error

	// ListByUser retrieves every budget plan owned by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetPlan, error)

	// FindByUserAndMonth retrieves the plan for one month, or nil when the
	// month has no plan yet.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthYear time.Time) (*entity.BudgetPlan, error)

	// Upsert writes a plan keyed by (user, month), replacing any existing
	// plan for that month.
	Upsert(ctx context.Context, plan *entity.BudgetPlan) (*entity.BudgetPlan, error)
}
