package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/audit"
	"github.com/salonhub/booking-api/internal/config"
	"github.com/salonhub/booking-api/internal/handlers"
	infraRepo "github.com/salonhub/booking-api/internal/infra/repository"
	"github.com/salonhub/booking-api/internal/middleware"
	ucAppointment "github.com/salonhub/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(
		appointmentRepo,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
	)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/categories", catalogHandler.ListCategories)
	r.GET("/categories/:id", catalogHandler.GetCategory)
	r.GET("/hairstyles", catalogHandler.ListHairstyles)
	r.GET("/hairstyles/:id", catalogHandler.GetHairstyle)
	r.GET("/salons", catalogHandler.ListSalons)
	r.GET("/salons/:id", catalogHandler.GetSalon)

	// ======================================================
	// ROTAS PRIVADAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(db))
	{
		secured.POST("/auth/logout", authHandler.Logout)
		secured.GET("/auth/profile", authHandler.GetProfile)

		secured.GET("/appointments", appointmentHandler.List)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/:id", appointmentHandler.Get)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.PATCH("/appointments/:id", appointmentHandler.Update)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
	}
}
