// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/finance-pal/backend/config"
	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/application/usecase/bankaccount"
	"github.com/finance-pal/backend/internal/application/usecase/budget"
	"github.com/finance-pal/backend/internal/application/usecase/export"
	"github.com/finance-pal/backend/internal/application/usecase/profile"
	"github.com/finance-pal/backend/internal/application/usecase/report"
	"github.com/finance-pal/backend/internal/application/usecase/savingsgoal"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/application/usecase/transaction"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/infra/db"
	"github.com/finance-pal/backend/internal/infra/server/router"
	"github.com/finance-pal/backend/internal/integration/adapters"
	"github.com/finance-pal/backend/internal/integration/entrypoint/controller"
	"github.com/finance-pal/backend/internal/integration/entrypoint/middleware"
	encoders "github.com/finance-pal/backend/internal/integration/export"
	"github.com/finance-pal/backend/internal/integration/persistence"
)

const streamHeartbeat = 25 * time.Second

// Stores holds the backing stores and the change feed. Remote and Local may
// be nil when that store is not configured; Clock defaults to time.Now.
type Stores struct {
	Remote *db.Database
	Local  *db.Database
	Feed   adapter.ChangeFeed
	Clock  controller.Clock
}

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	Stores            Stores
	TokenService      adapter.TokenService
	ExportRateLimiter *middleware.RateLimiter
	Router            *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, stores Stores) *Injector {
	if stores.Clock == nil {
		stores.Clock = time.Now
	}

	currency, ok := entity.FindCurrency(cfg.Presentation.Currency)
	if !ok {
		slog.Warn("Unknown default currency, falling back",
			"configured", cfg.Presentation.Currency,
			"fallback", entity.DefaultCurrency.Code,
		)
		currency = entity.DefaultCurrency
	}

	// Create repositories
	selector := persistence.NewDBSelector(gormOf(stores.Remote), gormOf(stores.Local))
	transactionRepo := persistence.NewTransactionRepository(selector)
	accountRepo := persistence.NewBankAccountRepository(selector)
	budgetRepo := persistence.NewBudgetRepository(selector)
	goalRepo := persistence.NewSavingsGoalRepository(selector)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	engine := derived.NewEngine(slog.Default())
	notifier := subscription.NewNotifier(stores.Feed)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, engine)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, notifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, notifier)

	// Create bank account use cases
	listBankAccountsUseCase := bankaccount.NewListBankAccountsUseCase(accountRepo, transactionRepo, engine)
	createBankAccountUseCase := bankaccount.NewCreateBankAccountUseCase(accountRepo, notifier)
	updateBankAccountUseCase := bankaccount.NewUpdateBankAccountUseCase(accountRepo, notifier)
	deleteBankAccountUseCase := bankaccount.NewDeleteBankAccountUseCase(accountRepo, notifier)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, notifier)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, notifier)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, notifier)

	// Create savings goal use cases
	listSavingsGoalsUseCase := savingsgoal.NewListSavingsGoalsUseCase(goalRepo)
	createSavingsGoalUseCase := savingsgoal.NewCreateSavingsGoalUseCase(goalRepo, notifier)
	updateSavingsGoalUseCase := savingsgoal.NewUpdateSavingsGoalUseCase(goalRepo, notifier)
	deleteSavingsGoalUseCase := savingsgoal.NewDeleteSavingsGoalUseCase(goalRepo, notifier)

	// Create report use cases
	dashboardUseCase := report.NewGetDashboardSummaryUseCase(transactionRepo, engine)
	monthlyTrendUseCase := report.NewGetMonthlyTrendUseCase(transactionRepo, engine)
	categoryBreakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo, engine)
	budgetComparisonUseCase := report.NewGetBudgetComparisonUseCase(transactionRepo, budgetRepo, engine)
	lifetimeSummaryUseCase := report.NewGetLifetimeSummaryUseCase(transactionRepo, engine)

	// Create profile use cases
	resetDataUseCase := profile.NewResetDataUseCase(transactionRepo, budgetRepo, goalRepo, accountRepo, notifier)

	// Create export and subscription use cases
	exportUseCase := export.NewExportCollectionUseCase(
		transactionRepo,
		accountRepo,
		budgetRepo,
		goalRepo,
		engine,
		encoders.NewCSVEncoder(),
		encoders.NewXLSXEncoder(),
	)
	watchUseCase := subscription.NewWatchCollectionUseCase(stores.Feed, transactionRepo, accountRepo, budgetRepo, goalRepo)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(
			storeCheck("remote", stores.Remote),
			storeCheck("local", stores.Local),
		),
		Reference: controller.NewReferenceController(currency),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		),
		BankAccount: controller.NewBankAccountController(
			listBankAccountsUseCase,
			createBankAccountUseCase,
			updateBankAccountUseCase,
			deleteBankAccountUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			createBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
		),
		SavingsGoal: controller.NewSavingsGoalController(
			listSavingsGoalsUseCase,
			createSavingsGoalUseCase,
			updateSavingsGoalUseCase,
			deleteSavingsGoalUseCase,
		),
		Report: controller.NewReportController(
			dashboardUseCase,
			monthlyTrendUseCase,
			categoryBreakdownUseCase,
			budgetComparisonUseCase,
			lifetimeSummaryUseCase,
			currency,
			stores.Clock,
		),
		Export:  controller.NewExportController(exportUseCase, currency, stores.Clock),
		Stream:  controller.NewStreamController(watchUseCase, streamHeartbeat),
		Profile: controller.NewProfileController(resetDataUseCase),
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var exportRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		exportRateLimiter = middleware.NewRateLimiterWithConfig(1000, time.Minute)
	} else {
		exportRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Export.MaxRequests, cfg.Export.Window)
	}
	scopeMiddleware := middleware.NewScopeMiddleware(tokenService, middleware.GuestAccess{
		Enabled:     cfg.Guest.Enabled && stores.Local != nil,
		AllowRemote: cfg.Guest.AllowRemote,
	})

	// Create router
	r := router.NewRouter(controllers, exportRateLimiter, scopeMiddleware)

	return &Injector{
		Config:            cfg,
		Stores:            stores,
		TokenService:      tokenService,
		ExportRateLimiter: exportRateLimiter,
		Router:            r,
	}
}

func gormOf(database *db.Database) *gorm.DB {
	if database == nil {
		return nil
	}
	return database.DB()
}

func storeCheck(name string, database *db.Database) controller.StoreCheck {
	if database == nil {
		return controller.StoreCheck{Name: name}
	}
	return controller.StoreCheck{Name: name, Check: database.HealthCheck}
}
