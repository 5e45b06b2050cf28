package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/admin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/database"
	"github.com/stephen-1-2/Anonymous-Wall/internal/handlers"
	"github.com/stephen-1-2/Anonymous-Wall/internal/middleware"
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"github.com/stephen-1-2/Anonymous-Wall/internal/routes"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Anonymous Wall backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&models.Message{},
		&models.Like{},
		&models.Comment{},
		&models.BoardConfig{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	st := store.New(db)
	gate := admin.NewGate(db)
	if err := gate.Seed(config.AppConfig.AdminSecret); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed board configuration")
	}

	h := handlers.New(st, gate, config.AppConfig)

	r := gin.New()
	r.MaxMultipartMemory = config.AppConfig.MaxMediaMB * 1024 * 1024

	r.Use(middleware.IdentityMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		routes.RegisterMessageRoutes(api, h)
		routes.RegisterAdminRoutes(api, h)
		routes.RegisterBackgroundRoutes(api, h)
	}

	// Static frontend + uploaded backgrounds
	r.Static("/assets/backgrounds", filepath.Join(config.AppConfig.DataDir, "backgrounds"))
	r.StaticFile("/", "./public/index.html")
	r.Static("/static", "./public/static")

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server stopped")
}
