// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vault-finance/backend/internal/integration/entrypoint/controller"
	"github.com/vault-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	goalController         *controller.GoalController
	savingsController      *controller.SavingsAccountController
	debtController         *controller.DebtController
	subscriptionController *controller.SubscriptionController
	insuranceController    *controller.InsurancePolicyController
	taxController          *controller.TaxController
	budgetController       *controller.BudgetController
	reportController       *controller.ReportController
	alertController        *controller.AlertController
	exportController       *controller.ExportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	savingsController *controller.SavingsAccountController,
	debtController *controller.DebtController,
	subscriptionController *controller.SubscriptionController,
	insuranceController *controller.InsurancePolicyController,
	taxController *controller.TaxController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	alertController *controller.AlertController,
	exportController *controller.ExportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		goalController:         goalController,
		savingsController:      savingsController,
		debtController:         debtController,
		subscriptionController: subscriptionController,
		insuranceController:    insuranceController,
		taxController:          taxController,
		budgetController:       budgetController,
		reportController:       reportController,
		alertController:        alertController,
		exportController:       exportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
			}

			// Logout needs the authenticated user ID to drop cached snapshots
			if r.authMiddleware != nil {
				v1.POST("/auth/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PUT("/:id", r.goalController.Update)
			}
		}

		// Savings account routes (require authentication)
		if r.savingsController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/savings-accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.savingsController.List)
				accounts.POST("", r.savingsController.Create)
				accounts.PUT("/:id", r.savingsController.Update)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.PUT("/:id", r.debtController.Update)
			}
		}

		// Subscription routes (require authentication)
		if r.subscriptionController != nil && r.authMiddleware != nil {
			subscriptions := v1.Group("/subscriptions")
			subscriptions.Use(r.authMiddleware.Authenticate())
			{
				subscriptions.GET("", r.subscriptionController.List)
				subscriptions.POST("", r.subscriptionController.Create)
				subscriptions.PUT("/:id", r.subscriptionController.Update)
			}
		}

		// Insurance policy routes (require authentication)
		if r.insuranceController != nil && r.authMiddleware != nil {
			policies := v1.Group("/insurance-policies")
			policies.Use(r.authMiddleware.Authenticate())
			{
				policies.GET("", r.insuranceController.List)
				policies.POST("", r.insuranceController.Create)
				policies.PUT("/:id", r.insuranceController.Update)
			}
		}

		// Tax routes (require authentication)
		if r.taxController != nil && r.authMiddleware != nil {
			tax := v1.Group("/tax")
			tax.Use(r.authMiddleware.Authenticate())
			{
				tax.GET("", r.taxController.Overview)
				tax.POST("/records", r.taxController.CreateRecord)
				tax.PUT("/deductions", r.taxController.UpsertDeduction)
			}
		}

		// Budget plan routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budget-plans")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.PUT("", r.budgetController.Save)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.Get)
			}
		}

		// Alert routes (require authentication)
		if r.alertController != nil && r.authMiddleware != nil {
			alerts := v1.Group("/alerts")
			alerts.Use(r.authMiddleware.Authenticate())
			{
				alerts.GET("", r.alertController.List)
			}
		}

		// Export routes (require authentication)
		if r.exportController != nil && r.authMiddleware != nil {
			export := v1.Group("/export")
			export.Use(r.authMiddleware.Authenticate())
			{
				export.GET("", r.exportController.Export)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
