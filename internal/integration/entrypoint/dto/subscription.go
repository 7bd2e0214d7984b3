// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// SaveSubscriptionRequest represents the request body for subscription
// creation and update.
type SaveSubscriptionRequest struct {
	ServiceName  string  `json:"service_name" binding:"required,min=1,max=255"`
	Amount       float64 `json:"amount" binding:"gte=0"`
	BillingCycle string  `json:"billing_cycle" binding:"required,oneof=monthly quarterly annually"`
	RenewalDate  *string `json:"renewal_date,omitempty"`
	Status       string  `json:"status" binding:"required,oneof=active cancelled paused"`
}

// SubscriptionResponse represents a subscription in API responses.
type SubscriptionResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ServiceName  string    `json:"service_name"`
	Amount       string    `json:"amount"`
	BillingCycle string    `json:"billing_cycle"`
	RenewalDate  *string   `json:"renewal_date,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// ToSubscriptionResponse converts a Subscription entity to a response DTO.
func ToSubscriptionResponse(s *entity.Subscription) SubscriptionResponse {
	response := SubscriptionResponse{
		ID:           s.ID.String(),
		UserID:       s.UserID.String(),
		ServiceName:  s.ServiceName,
		Amount:       s.Amount.String(),
		BillingCycle: string(s.BillingCycle),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.RenewalDate != nil {
		d := s.RenewalDate.Format("2006-01-02")
		response.RenewalDate = &d
	}
	return response
}
