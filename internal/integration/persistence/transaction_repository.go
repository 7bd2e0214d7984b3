// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	collection[model.TransactionModel, entity.Transaction]
}

// NewTransactionRepository creates a new transaction repository instance.
// Listings are ordered by transaction date descending.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		collection: collection[model.TransactionModel, entity.Transaction]{
			db:         db,
			orderBy:    "date DESC, created_at DESC",
			toEntity:   (*model.TransactionModel).ToEntity,
			fromEntity: model.TransactionFromEntity,
		},
	}
}

// ListByUserAndType retrieves the user's transactions restricted to one type.
func (r *transactionRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, transactionType *entity.TransactionType) ([]*entity.Transaction, error) {
	if transactionType == nil {
		return r.ListByUser(ctx, userID)
	}

	var ms []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(*transactionType)).
		Order(r.orderBy).
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(ms))
	for i := range ms {
		transactions[i] = ms[i].ToEntity()
	}
	return transactions, nil
}
