// Package alert derives reminders and warnings from the user's collections.
package alert

import (
	"fmt"
	"time"

	"github.com/vault-finance/backend/internal/domain/entity"
)

// Alert windows.
const (
	debtDueWindowDays      = 7
	subscriptionWindowDays = 7
	insuranceWindowDays    = 30
	goalMilestoneThreshold = 75.0
)

// Priority ranks an alert's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Kind names the collection an alert was derived from.
type Kind string

const (
	KindDebtPayment         Kind = "debt_payment"
	KindSubscriptionRenewal Kind = "subscription_renewal"
	KindInsuranceRenewal    Kind = "insurance_renewal"
	KindGoalMilestone       Kind = "goal_milestone"
	KindBudgetExceeded      Kind = "budget_exceeded"
)

// Alert is one derived reminder. Alerts are never stored; they are computed
// from the collections on every request.
type Alert struct {
	Kind     Kind
	Priority Priority
	Message  string
}

// DebtAlerts flags debts whose payment day falls within the next week.
func DebtAlerts(debts []*entity.Debt, now time.Time) []Alert {
	var alerts []Alert
	for _, d := range debts {
		if d.PaymentDueDay == nil {
			continue
		}
		days := daysUntilMonthDay(now, *d.PaymentDueDay)
		if days <= debtDueWindowDays {
			alerts = append(alerts, Alert{
				Kind:     KindDebtPayment,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Payment to %s due in %d day(s)", d.Creditor, days),
			})
		}
	}
	return alerts
}

// SubscriptionAlerts flags active subscriptions renewing within the next week.
func SubscriptionAlerts(subscriptions []*entity.Subscription, now time.Time) []Alert {
	var alerts []Alert
	for _, s := range subscriptions {
		if s.Status != entity.SubscriptionStatusActive || s.RenewalDate == nil {
			continue
		}
		days := daysUntil(now, *s.RenewalDate)
		if days >= 0 && days <= subscriptionWindowDays {
			alerts = append(alerts, Alert{
				Kind:     KindSubscriptionRenewal,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("%s renews in %d day(s)", s.ServiceName, days),
			})
		}
	}
	return alerts
}

// InsuranceAlerts flags active policies renewing within the next month.
func InsuranceAlerts(policies []*entity.InsurancePolicy, now time.Time) []Alert {
	var alerts []Alert
	for _, p := range policies {
		if p.Status != entity.PolicyStatusActive || p.RenewalDate == nil {
			continue
		}
		days := daysUntil(now, *p.RenewalDate)
		if days >= 0 && days <= insuranceWindowDays {
			alerts = append(alerts, Alert{
				Kind:     KindInsuranceRenewal,
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("%s policy with %s renews in %d day(s)", p.PolicyType, p.Provider, days),
			})
		}
	}
	return alerts
}

// GoalAlerts flags goals that crossed the milestone threshold but are not
// complete yet.
func GoalAlerts(goals []*entity.Goal) []Alert {
	var alerts []Alert
	for _, g := range goals {
		progress := g.ClampedProgress()
		if progress >= goalMilestoneThreshold && progress < 100 {
			alerts = append(alerts, Alert{
				Kind:     KindGoalMilestone,
				Priority: PriorityLow,
				Message:  fmt.Sprintf("Goal '%s' is %.0f%% funded", g.Title, progress),
			})
		}
	}
	return alerts
}

// BudgetAlerts flags the current month when actual spending exceeds the plan.
func BudgetAlerts(plan *entity.BudgetPlan) []Alert {
	if plan == nil || plan.ActualExpenditure == nil {
		return nil
	}
	if plan.ActualExpenditure.GreaterThan(plan.ProjectedExpenditure) {
		over := plan.ActualExpenditure.Sub(plan.ProjectedExpenditure)
		return []Alert{{
			Kind:     KindBudgetExceeded,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("This month's spending is %s over budget", over.StringFixed(2)),
		}}
	}
	return nil
}

// daysUntil counts whole days from now to the target date.
func daysUntil(now, target time.Time) int {
	return int(target.Sub(now).Hours() / 24)
}

// daysUntilMonthDay counts days until the next occurrence of a day-of-month,
// rolling into the next month when the day has passed.
func daysUntilMonthDay(now time.Time, day int) int {
	due := monthDay(now.Year(), now.Month(), day, now.Location())
	if due.Before(now.Truncate(24 * time.Hour)) {
		next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		due = monthDay(next.Year(), next.Month(), day, now.Location())
	}
	return daysUntil(now.Truncate(24*time.Hour), due)
}

// monthDay builds the given day within the month, clamping a due day of
// 29-31 to the month's last day so it never spills into the next month.
func monthDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
