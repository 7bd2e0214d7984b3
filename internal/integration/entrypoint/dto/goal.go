// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/application/usecase/goal"
)

// SaveGoalRequest represents the request body for goal creation and update.
type SaveGoalRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	TargetAmount  float64 `json:"target_amount" binding:"gte=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
	TargetDate    *string `json:"target_date,omitempty"`
}

// GoalResponse represents a goal in API responses, including the progress
// figures derived on every read.
type GoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	TargetDate    *string   `json:"target_date,omitempty"`
	Progress      float64   `json:"progress"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a goal output to a response DTO.
func ToGoalResponse(out *goal.GoalOutput) GoalResponse {
	g := out.Goal
	response := GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Title:         g.Title,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Progress:      out.Progress,
		Status:        string(out.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.TargetDate != nil {
		d := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &d
	}
	return response
}
