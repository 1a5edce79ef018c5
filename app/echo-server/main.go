package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmetrics "stayInsights/app/echo-server/metrics"
	"stayInsights/app/echo-server/router"
	"stayInsights/business/segmentation"
	"stayInsights/internal/middleware"
	psqlRepo "stayInsights/internal/repository/postgres"
	redisRepo "stayInsights/internal/repository/redis"
	"stayInsights/internal/rest"
	"stayInsights/pkg/config"
	"stayInsights/pkg/database"
	redisdb "stayInsights/pkg/database/redis"
	"stayInsights/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Stay Insights", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// RFM cache is optional; the service degrades to recomputing
	var rfmCache segmentation.RFMCache
	if cfg.Redis.RFMCacheTTL > 0 {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without RFM cache", err)
		} else {
			defer func() { _ = redisdb.CloseRedisClient(redisClient) }()
			rfmCache = redisRepo.NewRFMCacheRepository(redisClient, time.Duration(cfg.Redis.RFMCacheTTL)*time.Second)
		}
	}

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	segCfgRepo := psqlRepo.NewSegmentationConfigRepository(db)

	// Init service
	segmentationService := segmentation.NewSegmentationService(
		customerRepo,
		segCfgRepo,
		rfmCache,
		segmentation.DefaultConfig(),
	)

	// Init handler
	segmentationHandler := rest.NewSegmentationHandler(segmentationService)
	customerHandler := rest.NewCustomerHandler(customerRepo)
	adminHandler := rest.NewSegmentationAdminHandler(segCfgRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	appmetrics.Init()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// request latency for the segmentation endpoints
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			switch c.Path() {
			case "/api/v1/segmentation":
				appmetrics.SegmentationDuration.Observe(time.Since(start).Seconds())
				appmetrics.SegmentationRequests.Inc()
			case "/api/v1/segmentation/rfm":
				appmetrics.RFMRequests.Inc()
			}
			return err
		}
	})

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetSegmentationRoutes(api, segmentationHandler, authRequired)
	router.SetCustomerRoutes(api, customerHandler, authRequired)
	router.SetSegmentationAdminRoutes(api, adminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
