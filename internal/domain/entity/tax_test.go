// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDeductionEntry_Remaining(t *testing.T) {
	userID := uuid.New()

	t.Run("no limit means no headroom figure", func(t *testing.T) {
		e := NewDeductionEntry(userID, 2026, "retirement_annuity", decimal.NewFromInt(24000), nil)

		if e.Remaining() != nil {
			t.Errorf("expected nil remaining, got %s", e.Remaining())
		}
	})

	t.Run("remaining is limit minus year to date", func(t *testing.T) {
		limit := decimal.NewFromInt(350000)
		e := NewDeductionEntry(userID, 2026, "retirement_annuity", decimal.NewFromInt(120000), &limit)

		remaining := e.Remaining()
		if remaining == nil {
			t.Fatal("expected non-nil remaining")
		}
		if !remaining.Equal(decimal.NewFromInt(230000)) {
			t.Errorf("expected remaining 230000, got %s", remaining)
		}
	})

	t.Run("overshooting the limit clamps to zero", func(t *testing.T) {
		limit := decimal.NewFromInt(36000)
		e := NewDeductionEntry(userID, 2026, "tax_free_savings", decimal.NewFromInt(40000), &limit)

		remaining := e.Remaining()
		if remaining == nil {
			t.Fatal("expected non-nil remaining")
		}
		if !remaining.IsZero() {
			t.Errorf("expected remaining 0, got %s", remaining)
		}
	})
}

func TestIsValidSARSStatus(t *testing.T) {
	valid := []SARSStatus{SARSStatusPending, SARSStatusSubmitted, SARSStatusAssessed, SARSStatusClosed}
	for _, s := range valid {
		if !IsValidSARSStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidSARSStatus("rejected") {
		t.Error("expected unknown status to be invalid")
	}
}
