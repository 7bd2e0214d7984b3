// Package alert derives reminders and warnings from the user's collections.
package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/application/usecase/record"
	"github.com/vault-finance/backend/internal/domain/entity"
)

// GetAlertsInput represents the input for alert derivation.
type GetAlertsInput struct {
	UserID uuid.UUID
}

// GetAlertsOutput represents the derived alerts, high priority first.
type GetAlertsOutput struct {
	Alerts []Alert
}

// GetAlertsUseCase derives alerts from debts, subscriptions, insurance
// policies, goals and the current month's budget plan, fetched concurrently.
type GetAlertsUseCase struct {
	debtRepo         adapter.DebtRepository
	subscriptionRepo adapter.SubscriptionRepository
	policyRepo       adapter.InsurancePolicyRepository
	goalRepo         adapter.GoalRepository
	budgetRepo       adapter.BudgetPlanRepository
}

// NewGetAlertsUseCase creates a new GetAlertsUseCase instance.
func NewGetAlertsUseCase(
	debtRepo adapter.DebtRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	policyRepo adapter.InsurancePolicyRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetPlanRepository,
) *GetAlertsUseCase {
	return &GetAlertsUseCase{
		debtRepo:         debtRepo,
		subscriptionRepo: subscriptionRepo,
		policyRepo:       policyRepo,
		goalRepo:         goalRepo,
		budgetRepo:       budgetRepo,
	}
}

// Execute derives the user's alerts.
func (uc *GetAlertsUseCase) Execute(ctx context.Context, input GetAlertsInput) (*GetAlertsOutput, error) {
	now := time.Now().UTC()

	var (
		debts         []*entity.Debt
		subscriptions []*entity.Subscription
		policies      []*entity.InsurancePolicy
		goals         []*entity.Goal
		plan          *entity.BudgetPlan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		debts, err = uc.debtRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		subscriptions, err = uc.subscriptionRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		policies, err = uc.policyRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = uc.goalRepo.ListByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		plan, err = uc.budgetRepo.FindByUserAndMonth(gctx, input.UserID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, record.FetchError("failed to derive alerts", err)
	}

	var alerts []Alert
	alerts = append(alerts, BudgetAlerts(plan)...)
	alerts = append(alerts, DebtAlerts(debts, now)...)
	alerts = append(alerts, SubscriptionAlerts(subscriptions, now)...)
	alerts = append(alerts, InsuranceAlerts(policies, now)...)
	alerts = append(alerts, GoalAlerts(goals)...)

	return &GetAlertsOutput{Alerts: alerts}, nil
}
