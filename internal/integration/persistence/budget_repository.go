// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/persistence/model"
)

// budgetPlanRepository implements the adapter.BudgetPlanRepository interface.
type budgetPlanRepository struct {
	db *gorm.DB
}

// NewBudgetPlanRepository creates a new budget plan repository instance.
func NewBudgetPlanRepository(db *gorm.DB) adapter.BudgetPlanRepository {
	return &budgetPlanRepository{
		db: db,
	}
}

// Create inserts a new budget plan.
func (r *budgetPlanRepository) Create(ctx context.Context, plan *entity.BudgetPlan) error {
	result := r.db.WithContext(ctx).Create(model.BudgetPlanFromEntity(plan))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByUser retrieves every budget plan owned by the given user, ordered by
// month descending.
func (r *budgetPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetPlan, error) {
	var ms []model.BudgetPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month_year DESC").
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.BudgetPlan, len(ms))
	for i := range ms {
		plans[i] = ms[i].ToEntity()
	}
	return plans, nil
}

// FindByUserAndMonth retrieves the plan for one month, or nil when the month
// has no plan yet.
func (r *budgetPlanRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthYear time.Time) (*entity.BudgetPlan, error) {
	var m model.BudgetPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_year = ?", userID, entity.NormaliseMonth(monthYear)).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Upsert writes a plan keyed by (user, month), replacing any existing plan
// for that month.
func (r *budgetPlanRepository) Upsert(ctx context.Context, plan *entity.BudgetPlan) (*entity.BudgetPlan, error) {
	planModel := model.BudgetPlanFromEntity(plan)
	planModel.MonthYear = entity.NormaliseMonth(planModel.MonthYear)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BudgetPlanModel
		result := tx.
			Where("user_id = ? AND month_year = ?", plan.UserID, planModel.MonthYear).
			First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return tx.Create(planModel).Error
			}
			return result.Error
		}

		// Existing month: replace the row, keeping its identity.
		planModel.ID = existing.ID
		planModel.CreatedAt = existing.CreatedAt
		planModel.UpdatedAt = time.Now().UTC()
		return tx.Save(planModel).Error
	})
	if err != nil {
		return nil, err
	}

	return planModel.ToEntity(), nil
}
