// File: glowbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	profileRepo "glowbook/database/repository/profile"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/scheduling"
	"glowbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	profiles := profileRepo.NewMongoProfileRepo(catalog, bookings)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := bookings.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
	}

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Profiles:   profiles,
		Cache:      utils.GetCacheClient(),
		WindowDays: config.AppConfig.CalendarWindowDays,
		CacheTTL:   time.Duration(config.AppConfig.OverlayCacheTTLMin) * time.Minute,
	}
	bookingService := &booking.DefaultBookingService{
		Catalog:   catalog,
		Profiles:  profiles,
		Bookings:  bookings,
		Scheduler: schedulingService,
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalog)
	availabilityHandler := handlers.NewAvailabilityHandler(schedulingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	routes.RegisterRoutes(router, catalogHandler, availabilityHandler, bookingHandler)

	// Background maintenance.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	overlayWarmer := cron.StartOverlayWarmer(catalog, schedulingService)
	defer overlayWarmer.Stop()

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
