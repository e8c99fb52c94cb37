package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextstop/config"
	"nextstop/database"
	adminRepoPkg "nextstop/database/repository/admin"
	bookingRepoPkg "nextstop/database/repository/booking"
	busRepoPkg "nextstop/database/repository/bus"
	feedbackRepoPkg "nextstop/database/repository/feedback"
	routeRepoPkg "nextstop/database/repository/route"
	seatRepoPkg "nextstop/database/repository/seat"
	userRepoPkg "nextstop/database/repository/user"
	"nextstop/handlers"
	"nextstop/routes"
	"nextstop/services/auth"
	"nextstop/services/booking"
	"nextstop/services/catalog"
	"nextstop/services/feedback"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	routeRepo := routeRepoPkg.NewMongoRouteRepo()
	busRepo := busRepoPkg.NewMongoBusRepo()
	seatRepo := seatRepoPkg.NewMongoSeatRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Users:  userRepo,
		Admins: adminRepo,
		Mailer: utils.NewSMTPMailer(),
		Cache:  auth.NewRedisTokenCache(),
	}
	bookingService := &booking.DefaultBookingService{
		BusRepo:     busRepo,
		RouteRepo:   routeRepo,
		SeatRepo:    seatRepo,
		BookingRepo: bookingRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		RouteRepo: routeRepo,
		BusRepo:   busRepo,
		SeatRepo:  seatRepo,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		Repo:    feedbackRepo,
		BusRepo: busRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		authService,
		bookingService,
		catalogService,
		feedbackService,
		userRepo,
		adminRepo,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
