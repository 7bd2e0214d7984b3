// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// TaxRecordRepository persists tax records, listed by tax year descending.
type TaxRecordRepository = RecordRepository[entity.TaxRecord]

// DeductionRepository defines the interface for deduction tracker persistence.
// Entries are listed by deduction type ascending.
type DeductionRepository interface {
	// ListByUserAndYear retrieves the user's deduction entries for one tax year.
	ListByUserAndYear(ctx context.Context, userID uuid.UUID, taxYear int) ([]*entity.DeductionEntry, error)

	// Upsert writes an entry keyed by (user, tax year, deduction type),
	// replacing any existing entry at that key.
	Upsert(ctx context.Context, entry *entity.DeductionEntry) (*entity.DeductionEntry, error)
}
