package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/audit"
	"github.com/salaoflow/salon-scheduler/internal/config"
	"github.com/salaoflow/salon-scheduler/internal/handlers"
	infraRepo "github.com/salaoflow/salon-scheduler/internal/infra/repository"
	"github.com/salaoflow/salon-scheduler/internal/middleware"
	"github.com/salaoflow/salon-scheduler/internal/notify"
	ucBooking "github.com/salaoflow/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.SugaredLogger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	notifier := notify.NewDispatcher(notify.NewDBSink(db, rdb), log)
	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
	)

	setStatusUC := ucBooking.NewSetStatus(
		bookingRepo,
		notifier,
		auditDispatcher,
		cfg.CancelNoticeMinutes,
	)

	listUpcomingUC := ucBooking.NewListUpcoming(bookingRepo)
	listHistoryUC := ucBooking.NewListHistory(bookingRepo)
	listServicesUC := ucBooking.NewListServices(bookingRepo)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.SlotStepMinutes,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		setStatusUC,
		listUpcomingUC,
		listHistoryUC,
	)

	publicHandler := handlers.NewPublicHandler(db, listServicesUC, availabilityUC)
	notificationHandler := handlers.NewNotificationHandler(db, rdb)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/professionals/:id/services", publicHandler.ListServices)
			publicAPI.GET("/professionals/:id/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/status", bookingHandler.SetStatus)
			secured.GET("/me/bookings/upcoming", bookingHandler.ListUpcoming)
			secured.GET("/me/bookings/history", bookingHandler.ListHistory)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.GET("/me/notifications/unread-count", notificationHandler.UnreadCount)
			secured.POST("/me/notifications/read", notificationHandler.MarkAllRead)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
