// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGoal_Progress(t *testing.T) {
	userID := uuid.New()

	t.Run("computes percentage of target", func(t *testing.T) {
		g := NewGoal(userID, "Emergency fund", decimal.NewFromInt(150000), decimal.NewFromInt(85600), nil)

		progress := g.Progress()
		if math.Abs(progress-57.0666666) > 0.001 {
			t.Errorf("expected progress ~57.07, got %f", progress)
		}
	})

	t.Run("zero target does not divide by zero", func(t *testing.T) {
		g := NewGoal(userID, "Unset", decimal.Zero, decimal.NewFromInt(500), nil)

		progress := g.Progress()
		if progress != 50000 {
			t.Errorf("expected progress 50000 with target treated as 1, got %f", progress)
		}
	})
}

func TestGoal_ClampedProgress(t *testing.T) {
	userID := uuid.New()

	t.Run("overfunded goal clamps to 100", func(t *testing.T) {
		g := NewGoal(userID, "Holiday", decimal.NewFromInt(1000), decimal.NewFromInt(1500), nil)

		if clamped := g.ClampedProgress(); clamped != 100 {
			t.Errorf("expected clamped progress 100, got %f", clamped)
		}
		if progress := g.Progress(); progress != 150 {
			t.Errorf("expected underlying progress 150, got %f", progress)
		}
	})

	t.Run("in-range progress is unchanged", func(t *testing.T) {
		g := NewGoal(userID, "Car", decimal.NewFromInt(1000), decimal.NewFromInt(600), nil)

		if clamped := g.ClampedProgress(); clamped != 60 {
			t.Errorf("expected clamped progress 60, got %f", clamped)
		}
	})
}

func TestGoal_Status(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		current int64
		want    GoalStatus
	}{
		{"at 100 percent is completed", 100, GoalStatusCompleted},
		{"above 100 percent is completed", 130, GoalStatusCompleted},
		{"at 75 percent is on track", 75, GoalStatusOnTrack},
		{"at 99 percent is on track", 99, GoalStatusOnTrack},
		{"at 50 percent is behind", 50, GoalStatusBehind},
		{"at 74 percent is behind", 74, GoalStatusBehind},
		{"below 50 percent is just started", 49, GoalStatusJustStarted},
		{"empty goal is just started", 0, GoalStatusJustStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGoal(userID, "Goal", decimal.NewFromInt(100), decimal.NewFromInt(tt.current), nil)

			if got := g.Status(); got != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, got)
			}
		})
	}
}
