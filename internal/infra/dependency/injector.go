// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-dashboard/backend/config"
	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/budget-dashboard/backend/internal/application/usecase/debtplan"
	"github.com/budget-dashboard/backend/internal/application/usecase/goalprojection"
	"github.com/budget-dashboard/backend/internal/infra/db"
	"github.com/budget-dashboard/backend/internal/infra/server/router"
	"github.com/budget-dashboard/backend/internal/integration/adapters"
	"github.com/budget-dashboard/backend/internal/integration/cache"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// gormDB and redisClient may be nil; the routes that need them are then left out.
// now overrides the clock used by projections and may be nil.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, now func() time.Time) *Injector {
	if now == nil {
		now = time.Now
	}

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	var explainer adapter.PlanExplainer
	if cfg.AI.Enabled {
		explainer = adapters.NewGeminiExplainer(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.Timeout)
	}

	var planCache adapter.PlanCache
	var cacheHealthChecker func() bool
	if redisClient != nil {
		planCache = cache.NewRedisPlanCache(redisClient)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return planCache.Ping(ctx)
		}
	}

	// Create debt plan use case and controller
	buildPlanUseCase := debtplan.NewBuildPlanUseCase(planCache, explainer, cfg.Planner.MaxDebts, cfg.Planner.CacheTTL)
	debtPlanController := controller.NewDebtPlanController(buildPlanUseCase)

	// Create read-side controllers (only if database is available)
	var goalProjectionController *controller.GoalProjectionController
	var dashboardController *controller.DashboardController
	var dbHealthChecker func() bool

	if gormDB != nil {
		budgetRepo := persistence.NewBudgetRepository(gormDB)
		goalRepo := persistence.NewSavingsGoalRepository(gormDB)
		dashboardRepo := persistence.NewDashboardRepository(gormDB)

		goalProjectionController = controller.NewGoalProjectionController(
			goalprojection.NewProjectGoalUseCase(budgetRepo, now),
			goalprojection.NewListProjectionsUseCase(goalRepo, budgetRepo, now),
			goalprojection.NewGetProjectionUseCase(goalRepo, budgetRepo, now),
		)
		dashboardController = controller.NewDashboardController(
			dashboard.NewGetBudgetSummaryUseCase(dashboardRepo, budgetRepo, now),
		)
		dbHealthChecker = func() bool { return db.Ping(gormDB) }
	}

	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	// Create middleware
	planRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Planner.RateLimit, cfg.Planner.RateWindow)
	if cfg.IsTest() {
		planRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		debtPlanController,
		goalProjectionController,
		dashboardController,
		planRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          gormDB,
		Redis:       redisClient,
		Router:      r,
		RateLimiter: planRateLimiter,
	}
}
