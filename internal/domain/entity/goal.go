// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus classifies how far along a goal is, derived from its progress.
type GoalStatus string

const (
	GoalStatusCompleted   GoalStatus = "Completed"
	GoalStatusOnTrack     GoalStatus = "On Track"
	GoalStatusBehind      GoalStatus = "Behind"
	GoalStatusJustStarted GoalStatus = "Just Started"
)

// Goal represents a financial savings target.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, title string, targetAmount, currentAmount decimal.Decimal, targetDate *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the goal completion percentage. A zero target amount is
// treated as 1 so the division is always defined.
func (g *Goal) Progress() float64 {
	target := g.TargetAmount
	if target.LessThanOrEqual(decimal.Zero) {
		target = decimal.NewFromInt(1)
	}
	progress, _ := g.CurrentAmount.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return progress
}

// ClampedProgress returns Progress limited to [0, 100] for rendering a
// progress bar. The underlying value is never clamped.
func (g *Goal) ClampedProgress() float64 {
	progress := g.Progress()
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// Status classifies the goal by its unclamped progress.
func (g *Goal) Status() GoalStatus {
	progress := g.Progress()
	switch {
	case progress >= 100:
		return GoalStatusCompleted
	case progress >= 75:
		return GoalStatusOnTrack
	case progress >= 50:
		return GoalStatusBehind
	default:
		return GoalStatusJustStarted
	}
}
