// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/expense"
	"github.com/budgetwise/backend/internal/application/usecase/insight"
	"github.com/budgetwise/backend/internal/application/usecase/profile"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/application/usecase/saving"
	"github.com/budgetwise/backend/internal/application/usecase/savinggoal"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
	Notifier    *email.Notifier
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	savingRepo := persistence.NewSavingRepository(db)
	goalRepo := persistence.NewSavingGoalRepository(db)
	reminderRepo := persistence.NewReminderRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, redisClient)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	insightService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo)

	// Email delivery: real Resend client when configured, log-only otherwise
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will not be delivered")
		emailSender = email.NewMockEmailSender()
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, userRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create saving use cases
	createSavingUseCase := saving.NewCreateSavingUseCase(savingRepo, goalRepo, userRepo)
	listSavingsUseCase := saving.NewListSavingsUseCase(savingRepo)
	updateSavingUseCase := saving.NewUpdateSavingUseCase(savingRepo, goalRepo)
	deleteSavingUseCase := saving.NewDeleteSavingUseCase(savingRepo)

	// Create saving goal use cases
	createGoalUseCase := savinggoal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := savinggoal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := savinggoal.NewGetGoalUseCase(goalRepo, savingRepo)
	updateGoalUseCase := savinggoal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := savinggoal.NewDeleteGoalUseCase(goalRepo)

	// Create reminder use cases
	createReminderUseCase := reminder.NewCreateReminderUseCase(reminderRepo)
	listRemindersUseCase := reminder.NewListRemindersUseCase(reminderRepo)
	updateReminderUseCase := reminder.NewUpdateReminderUseCase(reminderRepo)
	completeReminderUseCase := reminder.NewCompleteReminderUseCase(reminderRepo, userRepo)
	deleteReminderUseCase := reminder.NewDeleteReminderUseCase(reminderRepo)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(userRepo)

	// Create dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(userRepo, expenseRepo, savingRepo)
	getTrendsUseCase := dashboard.NewGetTrendsUseCase(dashboardRepo)
	getDataRangeUseCase := dashboard.NewGetDataRangeUseCase(dashboardRepo)

	// Create insight use case
	getMonthlyInsightUseCase := insight.NewGetMonthlyInsightUseCase(getOverviewUseCase, userRepo, insightService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	savingController := controller.NewSavingController(
		createSavingUseCase,
		listSavingsUseCase,
		updateSavingUseCase,
		deleteSavingUseCase,
	)

	savingGoalController := controller.NewSavingGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	reminderController := controller.NewReminderController(
		createReminderUseCase,
		listRemindersUseCase,
		updateReminderUseCase,
		completeReminderUseCase,
		deleteReminderUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getOverviewUseCase,
		getTrendsUseCase,
		getDataRangeUseCase,
	)

	insightController := controller.NewInsightController(getMonthlyInsightUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		savingController,
		savingGoalController,
		reminderController,
		profileController,
		dashboardController,
		insightController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create background workers
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates, worker disabled", "error", err)
		} else {
			workerConfig := email.DefaultWorkerConfig()
			workerConfig.PollInterval = cfg.Email.PollInterval
			workerConfig.BatchSize = cfg.Email.BatchSize
			emailWorker = email.NewWorker(emailQueueRepo, emailSender, renderer, workerConfig)
		}
	}

	var notifier *email.Notifier
	if cfg.Email.NotifierEnabled {
		notifierConfig := email.DefaultNotifierConfig()
		notifierConfig.PollInterval = cfg.Email.NotifierInterval
		notifierConfig.Lookahead = cfg.Email.NotifierWindow
		notifier = email.NewNotifier(reminderRepo, userRepo, emailService, notifierConfig)
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Router:      r,
		EmailWorker: emailWorker,
		Notifier:    notifier,
	}
}
