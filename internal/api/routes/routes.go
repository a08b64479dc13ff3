package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/api/handlers"
	"github.com/grodno-ai/club-backend/internal/api/middleware"
	"github.com/grodno-ai/club-backend/internal/config"
	"github.com/grodno-ai/club-backend/internal/mail"
	"github.com/grodno-ai/club-backend/internal/metrics"
	"github.com/grodno-ai/club-backend/internal/models"
	"github.com/grodno-ai/club-backend/internal/services"
)

// Register wires up API routes and performs automatic migrations.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) error {
	if err := db.AutoMigrate(
		&models.Course{},
		&models.TeamMember{},
		&models.Registration{},
		&models.User{},
		&models.Setting{},
		&models.EmailTemplate{},
		&models.ActivityLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	settingsService := services.NewSettingsService(db)
	templateService := services.NewTemplateService(db)
	activityLogService := services.NewActivityLogService(db)
	transport := mail.NewFunctionClient(cfg.MailFunctionURL)
	notificationService := services.NewNotificationService(settingsService, templateService, activityLogService, transport)
	diagnosticsService := services.NewDiagnosticsService(settingsService, templateService, activityLogService)
	authService := services.NewAuthService(db, cfg.JWTSecret)

	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(db)
	teamHandler := handlers.NewTeamHandler(db)
	registrationHandler := handlers.NewRegistrationHandler(db, notificationService, activityLogService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	emailHandler := handlers.NewEmailHandler(notificationService, diagnosticsService)
	logHandler := handlers.NewLogHandler(activityLogService)
	userHandler := handlers.NewUserHandler(authService, activityLogService)

	router.GET("/api/v1/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Public site endpoints
	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.GET("/team", teamHandler.ListPublic)
	api.POST("/registrations", registrationHandler.Create)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.Auth(authService))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)

		// Courses
		protected.POST("/courses", courseHandler.Create)
		protected.PUT("/courses/:id", courseHandler.Update)
		protected.DELETE("/courses/:id", courseHandler.Delete)

		// Team
		protected.GET("/admin/team", teamHandler.List)
		protected.POST("/team", teamHandler.Create)
		protected.PUT("/team/:id", teamHandler.Update)
		protected.DELETE("/team/:id", teamHandler.Delete)

		// Registrations
		protected.GET("/registrations", registrationHandler.List)
		protected.DELETE("/registrations/:id", registrationHandler.Delete)

		// Admin users
		protected.GET("/users", userHandler.List)
		protected.POST("/users", userHandler.Create)
		protected.DELETE("/users/:id", userHandler.Delete)

		// Email templates
		protected.GET("/email/templates", templateHandler.List)
		protected.GET("/email/templates/:id", templateHandler.Get)
		protected.POST("/email/templates", templateHandler.Create)
		protected.PUT("/email/templates/:id", templateHandler.Update)
		protected.DELETE("/email/templates/:id", templateHandler.Delete)
		protected.POST("/email/templates/preview", templateHandler.Preview)

		// Email settings + pipeline
		protected.GET("/email/settings", settingsHandler.GetEmailSettings)
		protected.POST("/email/settings", settingsHandler.UpdateEmailSettings)
		protected.GET("/email/smtp", settingsHandler.GetSMTPSettings)
		protected.POST("/email/smtp", settingsHandler.UpdateSMTPSettings)
		protected.POST("/email/alert-url", settingsHandler.UpdateAlertURL)
		protected.POST("/email/test", emailHandler.SendTest)
		protected.GET("/email/diagnostics", emailHandler.Diagnose)

		// Activity logs
		protected.GET("/logs", logHandler.List)
	}

	return nil
}
