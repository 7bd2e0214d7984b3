// Package alert derives reminders and warnings from the user's collections.
package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
)

var now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestDebtAlerts(t *testing.T) {
	userID := uuid.New()

	t.Run("payment day within the week raises a high priority alert", func(t *testing.T) {
		day := 18
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, &day),
		}

		alerts := DebtAlerts(debts, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Kind != KindDebtPayment {
			t.Errorf("expected kind %q, got %q", KindDebtPayment, alerts[0].Kind)
		}
		if alerts[0].Priority != PriorityHigh {
			t.Errorf("expected high priority, got %q", alerts[0].Priority)
		}
	})

	t.Run("payment day beyond the week is silent", func(t *testing.T) {
		day := 30
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, &day),
		}

		if alerts := DebtAlerts(debts, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("passed payment day rolls into next month", func(t *testing.T) {
		day := 1
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, &day),
		}

		// June 15 to July 1 is over two weeks away.
		if alerts := DebtAlerts(debts, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("due day 31 clamps to the last day of a short month", func(t *testing.T) {
		day := 31
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, &day),
		}

		// Feb 22, 2026: the 31st clamps to Feb 28, six days out. An
		// unclamped date would normalise to Mar 3 and stay silent.
		feb := time.Date(2026, time.February, 22, 12, 0, 0, 0, time.UTC)
		alerts := DebtAlerts(debts, feb)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Priority != PriorityHigh {
			t.Errorf("expected high priority, got %q", alerts[0].Priority)
		}
	})

	t.Run("roll-over from a long month lands on the next calendar month", func(t *testing.T) {
		day := 1
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, &day),
		}

		// Jan 31: the 1st has passed, so the due date is Feb 1, one day out.
		jan := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
		alerts := DebtAlerts(debts, jan)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
	})

	t.Run("debt without a due day is skipped", func(t *testing.T) {
		debts := []*entity.Debt{
			entity.NewDebt(userID, "Standard Bank", "loan", decimal.NewFromInt(20000), nil, nil, nil),
		}

		if alerts := DebtAlerts(debts, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestSubscriptionAlerts(t *testing.T) {
	userID := uuid.New()

	t.Run("active subscription renewing this week is flagged", func(t *testing.T) {
		renewal := now.AddDate(0, 0, 3)
		subs := []*entity.Subscription{
			entity.NewSubscription(userID, "Netflix", decimal.NewFromInt(199), entity.BillingCycleMonthly, &renewal, entity.SubscriptionStatusActive),
		}

		alerts := SubscriptionAlerts(subs, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if !strings.Contains(alerts[0].Message, "Netflix") {
			t.Errorf("expected message to name the service, got %q", alerts[0].Message)
		}
	})

	t.Run("cancelled subscription is silent", func(t *testing.T) {
		renewal := now.AddDate(0, 0, 3)
		subs := []*entity.Subscription{
			entity.NewSubscription(userID, "Netflix", decimal.NewFromInt(199), entity.BillingCycleMonthly, &renewal, entity.SubscriptionStatusCancelled),
		}

		if alerts := SubscriptionAlerts(subs, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("renewal beyond the window is silent", func(t *testing.T) {
		renewal := now.AddDate(0, 0, 20)
		subs := []*entity.Subscription{
			entity.NewSubscription(userID, "Netflix", decimal.NewFromInt(199), entity.BillingCycleMonthly, &renewal, entity.SubscriptionStatusActive),
		}

		if alerts := SubscriptionAlerts(subs, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestInsuranceAlerts(t *testing.T) {
	userID := uuid.New()

	t.Run("active policy renewing within a month is flagged", func(t *testing.T) {
		renewal := now.AddDate(0, 0, 25)
		policies := []*entity.InsurancePolicy{
			entity.NewInsurancePolicy(userID, "car", "Outsurance", nil, decimal.NewFromInt(950), &renewal, entity.PolicyStatusActive, nil),
		}

		alerts := InsuranceAlerts(policies, now)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Kind != KindInsuranceRenewal {
			t.Errorf("expected kind %q, got %q", KindInsuranceRenewal, alerts[0].Kind)
		}
	})

	t.Run("expired policy is silent", func(t *testing.T) {
		renewal := now.AddDate(0, 0, 25)
		policies := []*entity.InsurancePolicy{
			entity.NewInsurancePolicy(userID, "car", "Outsurance", nil, decimal.NewFromInt(950), &renewal, entity.PolicyStatusExpired, nil),
		}

		if alerts := InsuranceAlerts(policies, now); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestGoalAlerts(t *testing.T) {
	userID := uuid.New()

	t.Run("goal past the milestone is flagged", func(t *testing.T) {
		goals := []*entity.Goal{
			entity.NewGoal(userID, "Emergency fund", decimal.NewFromInt(100), decimal.NewFromInt(80), nil),
		}

		alerts := GoalAlerts(goals)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Priority != PriorityLow {
			t.Errorf("expected low priority, got %q", alerts[0].Priority)
		}
	})

	t.Run("completed goal is silent", func(t *testing.T) {
		goals := []*entity.Goal{
			entity.NewGoal(userID, "Emergency fund", decimal.NewFromInt(100), decimal.NewFromInt(100), nil),
		}

		if alerts := GoalAlerts(goals); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("goal below the milestone is silent", func(t *testing.T) {
		goals := []*entity.Goal{
			entity.NewGoal(userID, "Emergency fund", decimal.NewFromInt(100), decimal.NewFromInt(74), nil),
		}

		if alerts := GoalAlerts(goals); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestBudgetAlerts(t *testing.T) {
	userID := uuid.New()
	month := entity.NormaliseMonth(now)

	t.Run("overspending raises an alert with the overage", func(t *testing.T) {
		actual := decimal.NewFromInt(12000)
		plan := entity.NewBudgetPlan(userID, month, decimal.NewFromInt(10000), decimal.NewFromInt(10000), nil, &actual, "")

		alerts := BudgetAlerts(plan)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if !strings.Contains(alerts[0].Message, "2000.00") {
			t.Errorf("expected overage in message, got %q", alerts[0].Message)
		}
	})

	t.Run("spending within plan is silent", func(t *testing.T) {
		actual := decimal.NewFromInt(9000)
		plan := entity.NewBudgetPlan(userID, month, decimal.NewFromInt(10000), decimal.NewFromInt(10000), nil, &actual, "")

		if alerts := BudgetAlerts(plan); len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("missing plan or actuals are silent", func(t *testing.T) {
		if alerts := BudgetAlerts(nil); len(alerts) != 0 {
			t.Errorf("expected no alerts for nil plan, got %d", len(alerts))
		}

		plan := entity.NewBudgetPlan(userID, month, decimal.NewFromInt(10000), decimal.NewFromInt(10000), nil, nil, "")
		if alerts := BudgetAlerts(plan); len(alerts) != 0 {
			t.Errorf("expected no alerts without actuals, got %d", len(alerts))
		}
	})
}
