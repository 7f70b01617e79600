package main

import (
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/alzoz/stock_management_app/cmd/docs"
	"github.com/alzoz/stock_management_app/internal/adapters/storage/jsonstore"
	"github.com/alzoz/stock_management_app/internal/core/services"
	"github.com/alzoz/stock_management_app/internal/handlers"
	"github.com/alzoz/stock_management_app/internal/middleware"
	"github.com/alzoz/stock_management_app/internal/platform/config"
	"github.com/alzoz/stock_management_app/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Stock Management API
// @version 1.0
// @description Backend API for the stock management application.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed credentials for a fresh snapshot. The hash is only used when the
	// snapshot file does not exist yet.
	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		logger.Error("Failed to hash admin password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.SnapshotPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create snapshot directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	store, err := jsonstore.Open(cfg.SnapshotPath, jsonstore.SeedConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: adminHash,
	})
	if err != nil {
		logger.Error("Failed to open snapshot store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Snapshot store ready", slog.String("path", cfg.SnapshotPath))

	repos := jsonstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser frontend)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
