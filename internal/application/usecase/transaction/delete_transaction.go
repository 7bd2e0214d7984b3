// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CollectionCache[*entity.Transaction]
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CollectionCache[*entity.Transaction],
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, record.NotFound("transaction not found")
		}
		return nil, record.FetchError("failed to find transaction", err)
	}
	if existing.UserID != input.UserID {
		return nil, record.Unauthorized("transaction belongs to another user")
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		// Failed mutation: the cached snapshot is left untouched.
		return nil, record.MutationError("failed to delete transaction", err)
	}

	// Drop the snapshot; the next listing refetches without the record.
	record.CachePurge(ctx, uc.cache, collectionName, input.UserID)

	return &DeleteTransactionOutput{Message: "Transaction deleted"}, nil
}
