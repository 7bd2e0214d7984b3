// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveTransactionRequest represents the request body for transaction creation
// and update. Amount is a non-negative magnitude; direction comes from Type.
type SaveTransactionRequest struct {
	Date     string  `json:"date" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=income expense"`
	Amount   float64 `json:"amount" binding:"required,gte=0"`
	Category string  `json:"category,omitempty"`
	Note     string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a Transaction entity to a response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Date:      t.Date.Format("2006-01-02"),
		Type:      string(t.Type),
		Amount:    t.Amount.String(),
		Category:  t.CategoryLabel(),
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: responses}
}
