package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Audit   *audit.Dispatcher
	Limiter middleware.Limiter
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	log := deps.Log

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
		middleware.CORSMiddleware(),
	)
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
	}

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, 0)
	}
	rateLimit := middleware.RateLimit(limiter, log)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)

	settings := ucAppointment.Settings{
		Calendar: cfg.Calendar,
		Location: cfg.Location,
	}

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, settings, deps.Audit, log)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, settings, deps.Audit, log)
	changeStatusUC := ucAppointment.NewChangeAppointmentStatus(appointmentRepo, deps.Audit, log)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, deps.Audit, log)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, settings)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, settings, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	meHandler := handlers.NewMeHandler(deps.DB)
	serviceHandler := handlers.NewServiceHandler(deps.DB)
	barberHandler := handlers.NewBarberHandler(deps.DB)
	clientHandler := handlers.NewClientHandler(deps.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, cfg.Location)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		cfg.Location,
	)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth", rateLimit)
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/staff/login", authHandler.StaffLogin)
		}

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/appointments/availability", appointmentHandler.Availability)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)

			writes := secured.Group("/", rateLimit)
			writes.POST("/appointments", appointmentHandler.Create)
			writes.PUT("/appointments/:id", appointmentHandler.Update)
			writes.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			writes.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// EQUIPA
			// ------------------------------
			staff := secured.Group("/", middleware.RequireStaff())
			{
				staff.POST("/services", serviceHandler.Create)
				staff.PUT("/services/:id", serviceHandler.Update)
				staff.DELETE("/services/:id", serviceHandler.Delete)

				staff.POST("/barbers", barberHandler.Create)
				staff.PUT("/barbers/:id", barberHandler.Update)
				staff.DELETE("/barbers/:id", barberHandler.Delete)

				staff.GET("/clients", clientHandler.List)
				staff.GET("/clients/:id", clientHandler.Get)
				staff.PUT("/clients/:id", clientHandler.Update)
				staff.DELETE("/clients/:id", clientHandler.Delete)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
