// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// Amount is a non-negative magnitude; direction comes from Type.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Date     time.Time
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category string
	Note     string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CollectionCache[*entity.Transaction]
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CollectionCache[*entity.Transaction],
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionInput(input.Date, input.Type, input.Amount); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Type,
		input.Amount,
		input.Category,
		input.Note,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		// Failed mutation: the cached snapshot is left untouched.
		return nil, record.MutationError("failed to create transaction", err)
	}

	// Prepend to the cached snapshot so the next listing needs no refetch.
	record.CachePrepend(ctx, uc.cache, collectionName, input.UserID, transaction)

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// validateTransactionInput rejects invalid fields before the store is touched.
func validateTransactionInput(date time.Time, transactionType entity.TransactionType, amount decimal.Decimal) error {
	if date.IsZero() {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidDate,
			"transaction date is required",
		)
	}
	if !entity.IsValidTransactionType(transactionType) {
		return record.Validation(
			domainerror.ErrCodeRecordInvalidEnum,
			"transaction type must be 'income' or 'expense'",
		)
	}
	if amount.IsNegative() {
		return record.InvalidAmount("amount must not be negative")
	}
	return nil
}
