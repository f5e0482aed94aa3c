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

	"github.com/NYTimes/gziphandler"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/ikkim/storefront/config"
	"github.com/ikkim/storefront/internal/app/controller"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/internal/app/service"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/router"
	"github.com/ikkim/storefront/internal/scheduler"
	"github.com/ikkim/storefront/internal/storage"
	"github.com/ikkim/storefront/pkg/logger"
	"github.com/ikkim/storefront/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.LogLevel(),
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting storefront server", map[string]interface{}{
		"environment":   cfg.Server.Environment,
		"port":          cfg.Server.Port,
		"log_level":     cfg.LogLevel(),
		"session_store": cfg.Session.Store,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	productRepo, err := repository.NewProductRepository()
	if err != nil {
		logger.Fatal("Failed to load catalog", err)
	}

	var redisClient *goredis.Client
	var sessionRepo repository.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err = redis.Connect(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", err, map[string]interface{}{
				"addr": cfg.Redis.Addr(),
			})
		}
		sessionRepo = repository.NewRedisSessionRepository(redisClient, cfg.Session.TTL)
	default:
		sessionRepo = repository.NewMemorySessionRepository(cfg.Session.TTL)
	}

	// Initialize services
	sessions := service.NewSessionManager(sessionRepo)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(sessions, productRepo)
	favoriteService := service.NewFavoriteService(sessions, productRepo)
	storefrontService := service.NewStorefrontService(sessions, catalogService)
	exportService := service.NewExportService(cartService)
	assets := storage.NewAssetResolver(ctx, cfg.Assets)

	// Initialize controllers
	productController := controller.NewProductController(catalogService, assets)
	storefrontController := controller.NewStorefrontController(storefrontService, assets)
	cartController := controller.NewCartController(cartService, exportService)
	favoriteController := controller.NewFavoriteController(favoriteService, assets)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Session, cfg.Server.Environment == "production")
	rateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst, time.Minute, 3*time.Minute)

	// Start session sweeper
	sweeper := scheduler.NewSessionSweeper(sessionRepo, cfg.Session.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("Failed to start session sweeper", err)
	}

	// Setup router
	r := router.NewRouter(
		productController,
		storefrontController,
		cartController,
		favoriteController,
		sessionMiddleware,
		rateLimiter,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           gziphandler.GzipHandler(engine),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logger.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	sweeper.Stop()
	rateLimiter.Shutdown()
	if err := redis.Close(redisClient); err != nil {
		logger.Error("Failed to close Redis connection", err)
	}

	logger.Info("Server stopped successfully")
}
