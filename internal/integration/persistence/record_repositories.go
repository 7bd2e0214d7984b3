// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/persistence/model"
)

// NewGoalRepository creates a new goal repository instance. Listings are
// ordered newest-first by creation time.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &collection[model.GoalModel, entity.Goal]{
		db:         db,
		orderBy:    "created_at DESC",
		toEntity:   (*model.GoalModel).ToEntity,
		fromEntity: model.GoalFromEntity,
	}
}

// NewSavingsAccountRepository creates a new savings account repository
// instance. Listings are ordered newest-first by creation time.
func NewSavingsAccountRepository(db *gorm.DB) adapter.SavingsAccountRepository {
	return &collection[model.SavingsAccountModel, entity.SavingsAccount]{
		db:         db,
		orderBy:    "created_at DESC",
		toEntity:   (*model.SavingsAccountModel).ToEntity,
		fromEntity: model.SavingsAccountFromEntity,
	}
}

// NewDebtRepository creates a new debt repository instance. Listings are
// ordered newest-first by creation time.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &collection[model.DebtModel, entity.Debt]{
		db:         db,
		orderBy:    "created_at DESC",
		toEntity:   (*model.DebtModel).ToEntity,
		fromEntity: model.DebtFromEntity,
	}
}

// NewSubscriptionRepository creates a new subscription repository instance.
// Listings are ordered newest-first by creation time.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &collection[model.SubscriptionModel, entity.Subscription]{
		db:         db,
		orderBy:    "created_at DESC",
		toEntity:   (*model.SubscriptionModel).ToEntity,
		fromEntity: model.SubscriptionFromEntity,
	}
}

// NewInsurancePolicyRepository creates a new insurance policy repository
// instance. Listings are ordered newest-first by creation time.
func NewInsurancePolicyRepository(db *gorm.DB) adapter.InsurancePolicyRepository {
	return &collection[model.InsurancePolicyModel, entity.InsurancePolicy]{
		db:         db,
		orderBy:    "created_at DESC",
		toEntity:   (*model.InsurancePolicyModel).ToEntity,
		fromEntity: model.InsurancePolicyFromEntity,
	}
}

// NewTaxRecordRepository creates a new tax record repository instance.
// Listings are ordered by tax year descending.
func NewTaxRecordRepository(db *gorm.DB) adapter.TaxRecordRepository {
	return &collection[model.TaxRecordModel, entity.TaxRecord]{
		db:         db,
		orderBy:    "tax_year DESC",
		toEntity:   (*model.TaxRecordModel).ToEntity,
		fromEntity: model.TaxRecordFromEntity,
	}
}
