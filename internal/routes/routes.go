package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/config"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/handlers"
	"github.com/StudioBellaVista/salon-admin/internal/middleware"
	ucAppointment "github.com/StudioBellaVista/salon-admin/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, gw domain.Gateway, cfg *config.Config, auditLogger *audit.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(auditLogger)

	localStore := ucAppointment.NewLocalStore()
	draftSessions := ucAppointment.NewDraftSessions()

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	checkConflictUC := ucAppointment.NewCheckConflict(gw)

	submitDraftUC := ucAppointment.NewSubmitDraft(
		gw,
		checkConflictUC,
		localStore,
		auditDispatcher,
	)

	dashboardStatsUC := ucAppointment.NewDashboardStats(gw, localStore)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	clientHandler := handlers.NewClientHandler(gw, auditDispatcher)
	teamHandler := handlers.NewTeamHandler(gw, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(gw, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		gw,
		checkConflictUC,
		submitDraftUC,
		localStore,
		draftSessions,
		auditDispatcher,
	)

	draftHandler := handlers.NewDraftHandler(
		gw,
		draftSessions,
		checkConflictUC,
		submitDraftUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardStatsUC)
	auditLogsHandler := handlers.NewAuditLogHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// EQUIPE
			// ------------------------------
			secured.GET("/team", teamHandler.List)
			secured.POST("/team", teamHandler.Create)
			secured.PUT("/team/:id", teamHandler.Update)
			secured.DELETE("/team/:id", teamHandler.Delete)
			secured.GET("/team/:id/service-options", teamHandler.ServiceOptions)

			// ------------------------------
			// SERVIÇOS
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)
			secured.POST("/appointments/check-conflict", appointmentHandler.CheckConflict)

			// ------------------------------
			// RASCUNHOS (formulário de agendamento)
			// ------------------------------
			secured.POST("/drafts", draftHandler.Start)
			secured.PATCH("/drafts/:id", draftHandler.Patch)
			secured.POST("/drafts/:id/submit", draftHandler.Submit)
			secured.DELETE("/drafts/:id", draftHandler.Cancel)

			// ------------------------------
			// PAINEL
			// ------------------------------
			secured.GET("/dashboard/stats", dashboardHandler.Stats)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
