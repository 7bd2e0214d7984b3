// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Listings are ordered by transaction date descending.
type TransactionRepository interface {
	RecordRepository[entity.Transaction]

	// ListByUserAndType retrieves the user's transactions restricted to one
	// type. A nil filter behaves like ListByUser.
	ListByUserAndType(ctx context.Context, userID uuid.UUID, transactionType *entity.TransactionType) ([]*entity.Transaction, error)
}
