// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SARSStatus represents the tax authority's processing state for a tax record.
type SARSStatus string

const (
	SARSStatusPending   SARSStatus = "pending"
	SARSStatusSubmitted SARSStatus = "submitted"
	SARSStatusAssessed  SARSStatus = "assessed"
	SARSStatusClosed    SARSStatus = "closed"
)

// TaxRecord represents a single tax year's filing figures.
//
// RefundAmount and AmountOwing are mutually exclusive in practice: at most
// one of them is positive on any assessed record.
type TaxRecord struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	TaxYear           int
	TaxableIncome     decimal.Decimal
	TaxPayable        decimal.Decimal
	DeductionsClaimed decimal.Decimal
	RefundAmount      decimal.Decimal
	AmountOwing       decimal.Decimal
	SARSStatus        SARSStatus
	SubmissionDate    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewTaxRecord creates a new TaxRecord entity.
func NewTaxRecord(
	userID uuid.UUID,
	taxYear int,
	taxableIncome, taxPayable, deductionsClaimed, refundAmount, amountOwing decimal.Decimal,
	sarsStatus SARSStatus,
	submissionDate *time.Time,
) *TaxRecord {
	now := time.Now().UTC()

	return &TaxRecord{
		ID:                uuid.New(),
		UserID:            userID,
		TaxYear:           taxYear,
		TaxableIncome:     taxableIncome,
		TaxPayable:        taxPayable,
		DeductionsClaimed: deductionsClaimed,
		RefundAmount:      refundAmount,
		AmountOwing:       amountOwing,
		SARSStatus:        sarsStatus,
		SubmissionDate:    submissionDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsValidSARSStatus reports whether the given status is known.
func IsValidSARSStatus(s SARSStatus) bool {
	return s == SARSStatusPending || s == SARSStatusSubmitted ||
		s == SARSStatusAssessed || s == SARSStatusClosed
}

// DeductionEntry tracks year-to-date amounts for one deduction type within a
// tax year. Entries are keyed by (user, tax year, deduction type): writing an
// entry for an existing key replaces it.
type DeductionEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TaxYear       int
	DeductionType string
	YTDAmount     decimal.Decimal
	AnnualLimit   *decimal.Decimal // Optional
	LastUpdated   time.Time
	CreatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewDeductionEntry creates a new DeductionEntry entity.
func NewDeductionEntry(userID uuid.UUID, taxYear int, deductionType string, ytdAmount decimal.Decimal, annualLimit *decimal.Decimal) *DeductionEntry {
	now := time.Now().UTC()

	return &DeductionEntry{
		ID:            uuid.New(),
		UserID:        userID,
		TaxYear:       taxYear,
		DeductionType: deductionType,
		YTDAmount:     ytdAmount,
		AnnualLimit:   annualLimit,
		LastUpdated:   now,
		CreatedAt:     now,
	}
}

// Remaining returns the headroom left under the annual limit, or nil when no
// limit is set.
func (d *DeductionEntry) Remaining() *decimal.Decimal {
	if d.AnnualLimit == nil {
		return nil
	}
	remaining := d.AnnualLimit.Sub(d.YTDAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &remaining
}
