// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	debtPlanController       *controller.DebtPlanController
	goalProjectionController *controller.GoalProjectionController
	dashboardController      *controller.DashboardController
	planRateLimiter          *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// Controllers backed by the database are nil when it is not connected.
func NewRouter(
	healthController *controller.HealthController,
	debtPlanController *controller.DebtPlanController,
	goalProjectionController *controller.GoalProjectionController,
	dashboardController *controller.DashboardController,
	planRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		debtPlanController:       debtPlanController,
		goalProjectionController: goalProjectionController,
		dashboardController:      dashboardController,
		planRateLimiter:          planRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery middleware
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.debtPlanController != nil {
			handlers := []gin.HandlerFunc{}
			if r.planRateLimiter != nil {
				handlers = append(handlers, r.planRateLimiter.Middleware())
			}
			handlers = append(handlers, r.debtPlanController.Create)
			v1.POST("/debt-plans", handlers...)
		}

		if r.goalProjectionController != nil {
			goals := v1.Group("/goal-projections")
			{
				goals.POST("", r.goalProjectionController.Project)
				goals.GET("", r.goalProjectionController.List)
				goals.GET("/:id", r.goalProjectionController.Get)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
