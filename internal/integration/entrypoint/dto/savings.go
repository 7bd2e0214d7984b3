// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveSavingsAccountRequest represents the request body for savings account
// creation and update.
type SaveSavingsAccountRequest struct {
	Institution  string   `json:"institution" binding:"required,min=1,max=255"`
	AccountType  string   `json:"account_type,omitempty"`
	Balance      float64  `json:"balance" binding:"gte=0"`
	InterestRate *float64 `json:"interest_rate,omitempty"`
}

// SavingsAccountResponse represents a savings account in API responses.
type SavingsAccountResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Institution  string    `json:"institution"`
	AccountType  string    `json:"account_type"`
	Balance      string    `json:"balance"`
	InterestRate *float64  `json:"interest_rate,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SavingsAccountListResponse represents the response for listing savings accounts.
type SavingsAccountListResponse struct {
	Accounts []SavingsAccountResponse `json:"accounts"`
}

// ToSavingsAccountResponse converts a SavingsAccount entity to a response DTO.
func ToSavingsAccountResponse(a *entity.SavingsAccount) SavingsAccountResponse {
	return SavingsAccountResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		Institution:  a.Institution,
		AccountType:  a.AccountType,
		Balance:      a.Balance.String(),
		InterestRate: a.InterestRate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
