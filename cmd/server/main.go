package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carauction/internal/config"
	"carauction/internal/handlers"
	"carauction/internal/middleware"
	"carauction/internal/repositories/memory"
	"carauction/internal/seed"
	"carauction/internal/services"
	"carauction/pkg/logger"
	"carauction/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:   cfg.App.LogLevel,
		Format:  cfg.App.LogFormat,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire repositories, factory and service
	vehicleRepo := memory.NewVehicleRepository()
	auctionRepo := memory.NewAuctionRepository()
	factory := services.NewVehicleFactory()
	auctionService := services.NewAuctionService(vehicleRepo, auctionRepo, factory, log)

	if cfg.Seed.Enabled {
		if err := seed.Seed(context.Background(), auctionService, log); err != nil {
			log.WithError(err).Fatal("failed to seed data")
		}
	}

	// Initialize handlers
	vehicleHandler := handlers.NewVehicleHandler(auctionService)
	auctionHandler := handlers.NewAuctionHandler(auctionService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware(log))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupVehicleRoutes(v1, vehicleHandler)
		routes.SetupAuctionRoutes(v1, auctionHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		stats, err := auctionService.GetStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
			"stats":   stats,
		})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
