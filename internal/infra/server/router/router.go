// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	expenseController    *controller.ExpenseController
	savingController     *controller.SavingController
	savingGoalController *controller.SavingGoalController
	reminderController   *controller.ReminderController
	profileController    *controller.ProfileController
	dashboardController  *controller.DashboardController
	insightController    *controller.InsightController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	savingController *controller.SavingController,
	savingGoalController *controller.SavingGoalController,
	reminderController *controller.ReminderController,
	profileController *controller.ProfileController,
	dashboardController *controller.DashboardController,
	insightController *controller.InsightController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		expenseController:    expenseController,
		savingController:     savingController,
		savingGoalController: savingGoalController,
		reminderController:   reminderController,
		profileController:    profileController,
		dashboardController:  dashboardController,
		insightController:    insightController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
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
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Saving routes (require authentication)
		if r.savingController != nil && r.authMiddleware != nil {
			savings := v1.Group("/savings")
			savings.Use(r.authMiddleware.Authenticate())
			{
				savings.GET("", r.savingController.List)
				savings.POST("", r.savingController.Create)
				savings.PATCH("/:id", r.savingController.Update)
				savings.DELETE("/:id", r.savingController.Delete)
			}
		}

		// Saving goal routes (require authentication)
		if r.savingGoalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/saving-goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.savingGoalController.List)
				goals.POST("", r.savingGoalController.Create)
				goals.GET("/:id", r.savingGoalController.Get)
				goals.PATCH("/:id", r.savingGoalController.Update)
				goals.DELETE("/:id", r.savingGoalController.Delete)
			}
		}

		// Reminder routes (require authentication)
		if r.reminderController != nil && r.authMiddleware != nil {
			reminders := v1.Group("/reminders")
			reminders.Use(r.authMiddleware.Authenticate())
			{
				reminders.GET("", r.reminderController.List)
				reminders.POST("", r.reminderController.Create)
				reminders.PATCH("/:id", r.reminderController.Update)
				reminders.POST("/:id/complete", r.reminderController.Complete)
				reminders.DELETE("/:id", r.reminderController.Delete)
			}
		}

		// Profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PATCH("", r.profileController.Update)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/overview", r.dashboardController.Overview)
				dashboard.GET("/trends", r.dashboardController.Trends)
				dashboard.GET("/data-range", r.dashboardController.DataRange)
			}
		}

		// AI insight routes (require authentication)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("/monthly", r.insightController.Monthly)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
