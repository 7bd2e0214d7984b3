// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// BudgetPlanModel represents the budget_plans table in the database. The
// (user_id, month_year) key is unique: writes for an existing month replace
// the row.
type BudgetPlanModel struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_budget_month"`
	MonthYear            time.Time        `gorm:"type:date;not null;uniqueIndex:idx_budget_month"`
	ProjectedIncome      decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	ProjectedExpenditure decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	ActualIncome         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ActualExpenditure    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Notes                string           `gorm:"type:text"`
	CreatedAt            time.Time        `gorm:"not null"`
	UpdatedAt            time.Time        `gorm:"not null"`
}

// TableName returns the table name for the BudgetPlanModel.
func (BudgetPlanModel) TableName() string {
	return "budget_plans"
}

// ToEntity converts a BudgetPlanModel to a domain BudgetPlan entity.
func (m *BudgetPlanModel) ToEntity() *entity.BudgetPlan {
	return &entity.BudgetPlan{
		ID:                   m.ID,
		UserID:               m.UserID,
		MonthYear:            m.MonthYear,
		ProjectedIncome:      m.ProjectedIncome,
		ProjectedExpenditure: m.ProjectedExpenditure,
		ActualIncome:         m.ActualIncome,
		ActualExpenditure:    m.ActualExpenditure,
		Notes:                m.Notes,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// BudgetPlanFromEntity creates a BudgetPlanModel from a domain BudgetPlan entity.
func BudgetPlanFromEntity(p *entity.BudgetPlan) *BudgetPlanModel {
	return &BudgetPlanModel{
		ID:                   p.ID,
		UserID:               p.UserID,
		MonthYear:            p.MonthYear,
		ProjectedIncome:      p.ProjectedIncome,
		ProjectedExpenditure: p.ProjectedExpenditure,
		ActualIncome:         p.ActualIncome,
		ActualExpenditure:    p.ActualExpenditure,
		Notes:                p.Notes,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
