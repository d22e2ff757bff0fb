package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dalevdmerwe/salon-booking/internal/analytics"
	"github.com/dalevdmerwe/salon-booking/internal/config"
	"github.com/dalevdmerwe/salon-booking/internal/handlers"
	infraRepo "github.com/dalevdmerwe/salon-booking/internal/infra/repository"
	"github.com/dalevdmerwe/salon-booking/internal/storage"
	ucBooking "github.com/dalevdmerwe/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	imageStore := storage.NewImageStore(cfg)

	visitStore := analytics.NewStore(db)
	visitDispatcher := analytics.NewDispatcher(visitStore, log)
	statsService := analytics.NewStatsService(db, rdb, log)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, log)
	checkSlotUC := ucBooking.NewCheckSlot(bookingRepo, log)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, log)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, log)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, log)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, log)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, log)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	reminderLinkUC := ucBooking.NewGetReminderLink(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		checkSlotUC,
		createBookingUC,
		log,
	)

	tenantHandler := handlers.NewTenantHandler(db, imageStore)
	serviceHandler := handlers.NewServiceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
		reminderLinkUC,
	)

	analyticsHandler := handlers.NewAnalyticsHandler(db, visitDispatcher, statsService)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING FUNNEL
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/tenants", publicHandler.ListTenants)
			publicAPI.GET("/:slug", publicHandler.GetTenant)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.GET("/:slug/availability/check", publicHandler.CheckSlot)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/:slug/visits", analyticsHandler.TrackVisit)
		}

		// ------------------------------
		// ADMIN CONSOLE
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/tenants", tenantHandler.List)
			admin.POST("/tenants", tenantHandler.Create)
			admin.GET("/tenants/:id", tenantHandler.Get)
			admin.PATCH("/tenants/:id", tenantHandler.Update)
			admin.DELETE("/tenants/:id", tenantHandler.Delete)

			admin.POST("/tenants/:id/image", tenantHandler.UploadImage)
			admin.DELETE("/tenants/:id/image", tenantHandler.DeleteImage)

			admin.GET("/tenants/:id/stats", analyticsHandler.VisitStats)
			admin.GET("/tenants/:id/visits/daily", analyticsHandler.DailyVisits)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			admin.GET("/bookings", bookingHandler.List)
			admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			admin.GET("/bookings/:id/reminder", bookingHandler.ReminderLink)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)
		}
	}
}
