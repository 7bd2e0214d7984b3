// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     time.Time
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category string
	Note     string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CollectionCache[*entity.Transaction]
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CollectionCache[*entity.Transaction],
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionInput(input.Date, input.Type, input.Amount); err != nil {
		return nil, err
	}

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

	existing.Date = input.Date
	existing.Type = input.Type
	existing.Amount = input.Amount
	existing.Category = input.Category
	existing.Note = input.Note
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		// Failed mutation: the cached snapshot is left untouched.
		return nil, record.MutationError("failed to update transaction", err)
	}

	// Swap the record in place in the cached snapshot.
	record.CacheReplace(ctx, uc.cache, collectionName, input.UserID, existing)

	return &UpdateTransactionOutput{Transaction: existing}, nil
}
