// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/integration/entrypoint/controller"
	"github.com/finance-pal/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	referenceController   *controller.ReferenceController
	transactionController *controller.TransactionController
	bankAccountController *controller.BankAccountController
	budgetController      *controller.BudgetController
	savingsGoalController *controller.SavingsGoalController
	reportController      *controller.ReportController
	exportController      *controller.ExportController
	streamController      *controller.StreamController
	profileController     *controller.ProfileController
	exportRateLimiter     *middleware.RateLimiter
	scopeMiddleware       *middleware.ScopeMiddleware
}

// Controllers groups the controllers served by the router. Nil controllers
// leave their routes unregistered.
type Controllers struct {
	Health      *controller.HealthController
	Reference   *controller.ReferenceController
	Transaction *controller.TransactionController
	BankAccount *controller.BankAccountController
	Budget      *controller.BudgetController
	SavingsGoal *controller.SavingsGoalController
	Report      *controller.ReportController
	Export      *controller.ExportController
	Stream      *controller.StreamController
	Profile     *controller.ProfileController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	exportRateLimiter *middleware.RateLimiter,
	scopeMiddleware *middleware.ScopeMiddleware,
) *Router {
	return &Router{
		healthController:      controllers.Health,
		referenceController:   controllers.Reference,
		transactionController: controllers.Transaction,
		bankAccountController: controllers.BankAccount,
		budgetController:      controllers.Budget,
		savingsGoalController: controllers.SavingsGoal,
		reportController:      controllers.Report,
		exportController:      controllers.Export,
		streamController:      controllers.Stream,
		profileController:     controllers.Profile,
		exportRateLimiter:     exportRateLimiter,
		scopeMiddleware:       scopeMiddleware,
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

	// Recovery plus an access log that redacts query-string tokens
	r.engine = gin.New()
	r.engine.Use(middleware.RequestLogger(), gin.Recovery())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.healthController != nil {
		r.engine.GET("/health", r.healthController.Check)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Reference data is public
		if r.referenceController != nil {
			v1.GET("/reference", r.referenceController.Get)
		}

		if r.scopeMiddleware == nil {
			return
		}

		// Everything below is read and written within the resolved scope
		scoped := v1.Group("")
		scoped.Use(r.scopeMiddleware.Resolve())

		if r.transactionController != nil {
			transactions := scoped.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.bankAccountController != nil {
			accounts := scoped.Group("/bank-accounts")
			{
				accounts.GET("", r.bankAccountController.List)
				accounts.POST("", r.bankAccountController.Create)
				accounts.PATCH("/:id", r.bankAccountController.Update)
				accounts.DELETE("/:id", r.bankAccountController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := scoped.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		if r.savingsGoalController != nil {
			goals := scoped.Group("/savings-goals")
			{
				goals.GET("", r.savingsGoalController.List)
				goals.POST("", r.savingsGoalController.Create)
				goals.PATCH("/:id", r.savingsGoalController.Update)
				goals.DELETE("/:id", r.savingsGoalController.Delete)
			}
		}

		if r.reportController != nil {
			reports := scoped.Group("/reports")
			{
				reports.GET("/dashboard", r.reportController.Dashboard)
				reports.GET("/monthly-trend", r.reportController.MonthlyTrend)
				reports.GET("/category-breakdown", r.reportController.CategoryBreakdown)
				reports.GET("/budget-comparison", r.reportController.BudgetComparison)
				reports.GET("/summary", r.reportController.Summary)
			}
		}

		if r.exportController != nil {
			if r.exportRateLimiter != nil {
				scoped.GET("/export/:collection", r.exportRateLimiter.Middleware(), r.exportController.Export)
			} else {
				scoped.GET("/export/:collection", r.exportController.Export)
			}
		}

		if r.streamController != nil {
			scoped.GET("/stream/:collection", r.streamController.Stream)
		}

		if r.profileController != nil {
			scoped.DELETE("/data", r.profileController.ResetData)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
