// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

const collectionName = "transactions"

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Type   *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions,
// ordered by date descending.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing. Unfiltered listings
// read through the per-user snapshot cache; type-filtered listings always go
// to the store.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CollectionCache[*entity.Transaction]
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CollectionCache[*entity.Transaction],
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, record.Validation(
				domainerror.ErrCodeRecordInvalidEnum,
				"transaction type must be 'income' or 'expense'",
			)
		}
		transactions, err := uc.transactionRepo.ListByUserAndType(ctx, input.UserID, input.Type)
		if err != nil {
			return nil, record.FetchError("failed to list transactions", err)
		}
		return &ListTransactionsOutput{Transactions: transactions}, nil
	}

	transactions, err := record.ListThroughCache(ctx, uc.cache, collectionName, input.UserID,
		func(ctx context.Context) ([]*entity.Transaction, error) {
			return uc.transactionRepo.ListByUser(ctx, input.UserID)
		})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
