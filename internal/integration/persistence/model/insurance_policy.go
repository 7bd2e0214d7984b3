// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// InsurancePolicyModel represents the insurance_policies table in the database.
type InsurancePolicyModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	PolicyType     string           `gorm:"type:varchar(100);not null"`
	Provider       string           `gorm:"type:varchar(255);not null"`
	CoverageAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	MonthlyPremium decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	RenewalDate    *time.Time       `gorm:"type:date"`
	Status         string           `gorm:"type:varchar(20);not null;default:'active'"`
	LastClaimDate  *time.Time       `gorm:"type:date"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
	DeletedAt      gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InsurancePolicyModel.
func (InsurancePolicyModel) TableName() string {
	return "insurance_policies"
}

// ToEntity converts an InsurancePolicyModel to a domain InsurancePolicy entity.
func (m *InsurancePolicyModel) ToEntity() *entity.InsurancePolicy {
	return &entity.InsurancePolicy{
		ID:             m.ID,
		UserID:         m.UserID,
		PolicyType:     m.PolicyType,
		Provider:       m.Provider,
		CoverageAmount: m.CoverageAmount,
		MonthlyPremium: m.MonthlyPremium,
		RenewalDate:    m.RenewalDate,
		Status:         entity.PolicyStatus(m.Status),
		LastClaimDate:  m.LastClaimDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAtPtr(m.DeletedAt),
	}
}

// InsurancePolicyFromEntity creates an InsurancePolicyModel from a domain InsurancePolicy entity.
func InsurancePolicyFromEntity(p *entity.InsurancePolicy) *InsurancePolicyModel {
	return &InsurancePolicyModel{
		ID:             p.ID,
		UserID:         p.UserID,
		PolicyType:     p.PolicyType,
		Provider:       p.Provider,
		CoverageAmount: p.CoverageAmount,
		MonthlyPremium: p.MonthlyPremium,
		RenewalDate:    p.RenewalDate,
		Status:         string(p.Status),
		LastClaimDate:  p.LastClaimDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		DeletedAt:      deletedAtFromPtr(p.DeletedAt),
	}
}
