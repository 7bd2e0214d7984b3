// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveDebtRequest represents the request body for debt creation and update.
type SaveDebtRequest struct {
	Creditor       string   `json:"creditor" binding:"required,min=1,max=255"`
	DebtType       string   `json:"debt_type,omitempty"`
	Balance        float64  `json:"balance" binding:"gte=0"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
	PaymentDueDay  *int     `json:"payment_due_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Creditor       string    `json:"creditor"`
	DebtType       string    `json:"debt_type"`
	Balance        string    `json:"balance"`
	MonthlyPayment *string   `json:"monthly_payment,omitempty"`
	InterestRate   *float64  `json:"interest_rate,omitempty"`
	PaymentDueDay  *int      `json:"payment_due_day,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToDebtResponse converts a Debt entity to a response DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	response := DebtResponse{
		ID:            d.ID.String(),
		UserID:        d.UserID.String(),
		Creditor:      d.Creditor,
		DebtType:      d.DebtType,
		Balance:       d.Balance.String(),
		InterestRate:  d.InterestRate,
		PaymentDueDay: d.PaymentDueDay,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.MonthlyPayment != nil {
		p := d.MonthlyPayment.String()
		response.MonthlyPayment = &p
	}
	return response
}
