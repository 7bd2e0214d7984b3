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

// deductionRepository implements the adapter.DeductionRepository interface.
type deductionRepository struct {
	db *gorm.DB
}

// NewDeductionRepository creates a new deduction tracker repository instance.
func NewDeductionRepository(db *gorm.DB) adapter.DeductionRepository {
	return &deductionRepository{
		db: db,
	}
}

// ListByUserAndYear retrieves the user's deduction entries for one tax year,
// ordered by deduction type ascending.
func (r *deductionRepository) ListByUserAndYear(ctx context.Context, userID uuid.UUID, taxYear int) ([]*entity.DeductionEntry, error) {
	var ms []model.DeductionEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tax_year = ?", userID, taxYear).
		Order("deduction_type ASC").
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.DeductionEntry, len(ms))
	for i := range ms {
		entries[i] = ms[i].ToEntity()
	}
	return entries, nil
}

// Upsert writes an entry keyed by (user, tax year, deduction type), replacing
// any existing entry at that key.
func (r *deductionRepository) Upsert(ctx context.Context, entry *entity.DeductionEntry) (*entity.DeductionEntry, error) {
	entryModel := model.DeductionEntryFromEntity(entry)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.DeductionEntryModel
		result := tx.
			Where("user_id = ? AND tax_year = ? AND deduction_type = ?",
				entry.UserID, entry.TaxYear, entry.DeductionType).
			First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return tx.Create(entryModel).Error
			}
			return result.Error
		}

		// Existing key: replace the row, keeping its identity.
		entryModel.ID = existing.ID
		entryModel.CreatedAt = existing.CreatedAt
		entryModel.LastUpdated = time.Now().UTC()
		return tx.Save(entryModel).Error
	})
	if err != nil {
		return nil, err
	}

	return entryModel.ToEntity(), nil
}
