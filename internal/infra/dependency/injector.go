// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vault-finance/backend/config"
	"github.com/vault-finance/backend/internal/application/usecase/alert"
	"github.com/vault-finance/backend/internal/application/usecase/auth"
	"github.com/vault-finance/backend/internal/application/usecase/budget"
	"github.com/vault-finance/backend/internal/application/usecase/debt"
	"github.com/vault-finance/backend/internal/application/usecase/export"
	"github.com/vault-finance/backend/internal/application/usecase/goal"
	"github.com/vault-finance/backend/internal/application/usecase/insurance"
	"github.com/vault-finance/backend/internal/application/usecase/report"
	"github.com/vault-finance/backend/internal/application/usecase/savings"
	"github.com/vault-finance/backend/internal/application/usecase/subscription"
	"github.com/vault-finance/backend/internal/application/usecase/tax"
	"github.com/vault-finance/backend/internal/application/usecase/transaction"
	"github.com/vault-finance/backend/internal/domain/entity"
	"github.com/vault-finance/backend/internal/infra/server/router"
	"github.com/vault-finance/backend/internal/integration/adapters"
	"github.com/vault-finance/backend/internal/integration/cache"
	"github.com/vault-finance/backend/internal/integration/entrypoint/controller"
	"github.com/vault-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/vault-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	savingsRepo := persistence.NewSavingsAccountRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	insuranceRepo := persistence.NewInsurancePolicyRepository(db)
	taxRecordRepo := persistence.NewTaxRecordRepository(db)
	deductionRepo := persistence.NewDeductionRepository(db)
	budgetRepo := persistence.NewBudgetPlanRepository(db)

	// Create snapshot caches, one per collection
	ttl := cfg.Redis.TTL
	transactionCache := cache.NewCollectionCache(redisClient, "transactions", ttl,
		func(t *entity.Transaction) uuid.UUID { return t.ID })
	goalCache := cache.NewCollectionCache(redisClient, "goals", ttl,
		func(g *entity.Goal) uuid.UUID { return g.ID })
	savingsCache := cache.NewCollectionCache(redisClient, "savings_accounts", ttl,
		func(a *entity.SavingsAccount) uuid.UUID { return a.ID })
	debtCache := cache.NewCollectionCache(redisClient, "debts", ttl,
		func(d *entity.Debt) uuid.UUID { return d.ID })
	subscriptionCache := cache.NewCollectionCache(redisClient, "subscriptions", ttl,
		func(s *entity.Subscription) uuid.UUID { return s.ID })
	insuranceCache := cache.NewCollectionCache(redisClient, "insurance_policies", ttl,
		func(p *entity.InsurancePolicy) uuid.UUID { return p.ID })
	taxRecordCache := cache.NewCollectionCache(redisClient, "tax_records", ttl,
		func(r *entity.TaxRecord) uuid.UUID { return r.ID })
	snapshotPurger := cache.NewSnapshotPurger(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService, snapshotPurger)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, transactionCache)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, transactionCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, transactionCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, transactionCache)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, goalCache)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, goalCache)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, goalCache)

	// Create savings account use cases
	listSavingsUseCase := savings.NewListSavingsAccountsUseCase(savingsRepo, savingsCache)
	createSavingsUseCase := savings.NewCreateSavingsAccountUseCase(savingsRepo, savingsCache)
	updateSavingsUseCase := savings.NewUpdateSavingsAccountUseCase(savingsRepo, savingsCache)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo, debtCache)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, debtCache)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, debtCache)

	// Create subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo, subscriptionCache)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo, subscriptionCache)
	updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo, subscriptionCache)

	// Create insurance policy use cases
	listPoliciesUseCase := insurance.NewListPoliciesUseCase(insuranceRepo, insuranceCache)
	createPolicyUseCase := insurance.NewCreatePolicyUseCase(insuranceRepo, insuranceCache)
	updatePolicyUseCase := insurance.NewUpdatePolicyUseCase(insuranceRepo, insuranceCache)

	// Create tax use cases
	taxOverviewUseCase := tax.NewGetTaxOverviewUseCase(taxRecordRepo, deductionRepo, taxRecordCache)
	createTaxRecordUseCase := tax.NewCreateTaxRecordUseCase(taxRecordRepo, taxRecordCache)
	upsertDeductionUseCase := tax.NewUpsertDeductionUseCase(deductionRepo)

	// Create budget use cases
	listBudgetPlansUseCase := budget.NewListBudgetPlansUseCase(budgetRepo)
	saveBudgetPlanUseCase := budget.NewSaveBudgetPlanUseCase(budgetRepo)

	// Create derived read use cases
	reportUseCase := report.NewGetFinancialReportUseCase(transactionRepo, goalRepo, savingsRepo, debtRepo)
	alertsUseCase := alert.NewGetAlertsUseCase(debtRepo, subscriptionRepo, insuranceRepo, goalRepo, budgetRepo)
	exportUseCase := export.NewExportDataUseCase(
		transactionRepo, goalRepo, savingsRepo, debtRepo,
		subscriptionRepo, insuranceRepo, taxRecordRepo, budgetRepo,
	)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
	)

	savingsController := controller.NewSavingsAccountController(
		listSavingsUseCase,
		createSavingsUseCase,
		updateSavingsUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		updateDebtUseCase,
	)

	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		updateSubscriptionUseCase,
	)

	insuranceController := controller.NewInsurancePolicyController(
		listPoliciesUseCase,
		createPolicyUseCase,
		updatePolicyUseCase,
	)

	taxController := controller.NewTaxController(
		taxOverviewUseCase,
		createTaxRecordUseCase,
		upsertDeductionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetPlansUseCase,
		saveBudgetPlanUseCase,
	)

	reportController := controller.NewReportController(reportUseCase)
	alertController := controller.NewAlertController(alertsUseCase)
	exportController := controller.NewExportController(exportUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		goalController,
		savingsController,
		debtController,
		subscriptionController,
		insuranceController,
		taxController,
		budgetController,
		reportController,
		alertController,
		exportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
