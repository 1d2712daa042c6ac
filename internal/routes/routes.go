package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DjapsSparrow/Kine-siologie/internal/analysis"
	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/cache"
	"github.com/DjapsSparrow/Kine-siologie/internal/config"
	"github.com/DjapsSparrow/Kine-siologie/internal/handlers"
	infraRepo "github.com/DjapsSparrow/Kine-siologie/internal/infra/repository"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/storage"
	ucAppointment "github.com/DjapsSparrow/Kine-siologie/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	calendarCache := cache.New(cfg)
	fileStore := storage.NewFileStore(cfg)
	analyzer := analysis.New(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	calendarEventsUC := ucAppointment.NewCalendarEvents(
		appointmentRepo,
		calendarCache,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		calendarEventsUC,
		availabilityUC,
	)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	protocolHandler := handlers.NewProtocolHandler(db, fileStore, analyzer, auditDispatcher)
	documentHandler := handlers.NewDocumentHandler(db, fileStore, auditDispatcher)
	sessionHandler := handlers.NewSessionHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// Appointments & calendar
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/calendar", appointmentHandler.Calendar)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// Clients
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// Protocols
			secured.GET("/protocols", protocolHandler.List)
			secured.GET("/protocols/categories", protocolHandler.ListCategories)
			secured.GET("/protocols/:id", protocolHandler.Get)
			secured.POST("/protocols", protocolHandler.Create)
			secured.PATCH("/protocols/:id", protocolHandler.Update)
			secured.PATCH("/protocols/:id/favorite", protocolHandler.ToggleFavorite)
			secured.POST("/protocols/:id/file", protocolHandler.UploadFile)
			secured.POST("/protocols/:id/analyze", protocolHandler.Analyze)
			secured.DELETE("/protocols/:id", protocolHandler.Delete)

			// Documents
			secured.GET("/documents", documentHandler.List)
			secured.POST("/documents", documentHandler.Upload)
			secured.DELETE("/documents/:id", documentHandler.Delete)

			// Sessions
			secured.GET("/sessions", sessionHandler.List)
			secured.POST("/sessions", sessionHandler.Create)
			secured.PATCH("/sessions/:id", sessionHandler.Update)
			secured.DELETE("/sessions/:id", sessionHandler.Delete)

			// Dashboard & search
			secured.GET("/dashboard", dashboardHandler.Summary)
			secured.GET("/search", dashboardHandler.QuickSearch)

			// Settings
			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)

			// Audit trail
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
