// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// TaxRecordModel represents the tax_records table in the database.
type TaxRecordModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	TaxYear           int             `gorm:"not null;index"`
	TaxableIncome     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxPayable        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionsClaimed decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	RefundAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	AmountOwing       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SARSStatus        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	SubmissionDate    *time.Time      `gorm:"type:date"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TaxRecordModel.
func (TaxRecordModel) TableName() string {
	return "tax_records"
}

// ToEntity converts a TaxRecordModel to a domain TaxRecord entity.
func (m *TaxRecordModel) ToEntity() *entity.TaxRecord {
	return &entity.TaxRecord{
		ID:                m.ID,
		UserID:            m.UserID,
		TaxYear:           m.TaxYear,
		TaxableIncome:     m.TaxableIncome,
		TaxPayable:        m.TaxPayable,
		DeductionsClaimed: m.DeductionsClaimed,
		RefundAmount:      m.RefundAmount,
		AmountOwing:       m.AmountOwing,
		SARSStatus:        entity.SARSStatus(m.SARSStatus),
		SubmissionDate:    m.SubmissionDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAtPtr(m.DeletedAt),
	}
}

// TaxRecordFromEntity creates a TaxRecordModel from a domain TaxRecord entity.
func TaxRecordFromEntity(r *entity.TaxRecord) *TaxRecordModel {
	return &TaxRecordModel{
		ID:                r.ID,
		UserID:            r.UserID,
		TaxYear:           r.TaxYear,
		TaxableIncome:     r.TaxableIncome,
		TaxPayable:        r.TaxPayable,
		DeductionsClaimed: r.DeductionsClaimed,
		RefundAmount:      r.RefundAmount,
		AmountOwing:       r.AmountOwing,
		SARSStatus:        string(r.SARSStatus),
		SubmissionDate:    r.SubmissionDate,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		DeletedAt:         deletedAtFromPtr(r.DeletedAt),
	}
}

// DeductionEntryModel represents the deductions_tracker table in the database.
// The (user_id, tax_year, deduction_type) key is unique: writes for an
// existing key replace the row.
type DeductionEntryModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_deduction_key"`
	TaxYear       int              `gorm:"not null;uniqueIndex:idx_deduction_key"`
	DeductionType string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_deduction_key"`
	YTDAmount     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	AnnualLimit   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	LastUpdated   time.Time        `gorm:"not null"`
	CreatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the DeductionEntryModel.
func (DeductionEntryModel) TableName() string {
	return "deductions_tracker"
}

// ToEntity converts a DeductionEntryModel to a domain DeductionEntry entity.
func (m *DeductionEntryModel) ToEntity() *entity.DeductionEntry {
	return &entity.DeductionEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		TaxYear:       m.TaxYear,
		DeductionType: m.DeductionType,
		YTDAmount:     m.YTDAmount,
		AnnualLimit:   m.AnnualLimit,
		LastUpdated:   m.LastUpdated,
		CreatedAt:     m.CreatedAt,
	}
}

// DeductionEntryFromEntity creates a DeductionEntryModel from a domain DeductionEntry entity.
func DeductionEntryFromEntity(e *entity.DeductionEntry) *DeductionEntryModel {
	return &DeductionEntryModel{
		ID:            e.ID,
		UserID:        e.UserID,
		TaxYear:       e.TaxYear,
		DeductionType: e.DeductionType,
		YTDAmount:     e.YTDAmount,
		AnnualLimit:   e.AnnualLimit,
		LastUpdated:   e.LastUpdated,
		CreatedAt:     e.CreatedAt,
	}
}
