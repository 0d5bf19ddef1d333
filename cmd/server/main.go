package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-planner-backend/internal/api/routes"
	"team-planner-backend/internal/config"
	"team-planner-backend/internal/database"
	"team-planner-backend/internal/realtime"
	"team-planner-backend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "team-planner-backend/docs" // This is needed for swag
)

//	@title			Team Planner Backend API
//	@version		1.0
//	@description	Backend API for team groups, tasks, calendar events, notifications and reminders.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	hub, closeHub := setupHub(cfg)
	defer closeHub()

	// Initialize router
	app, err := routes.SetupRoutes(db, cfg, hub)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := worker.NewReminderScheduler(app.Reminders, cfg.ReminderInterval, cfg.ReminderCycleTimeout)
	scheduler.Start(ctx)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	server := newServer(":"+port, app.Router)

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// setupHub connects to redis when configured and falls back to the in-process hub
func setupHub(cfg *config.Config) (realtime.Hub, func()) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, using in-process notification hub")
		return realtime.NewMemoryHub(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis unavailable at %s, using in-process notification hub: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return realtime.NewMemoryHub(), func() {}
	}

	logrus.Infof("Using redis notification hub at %s", cfg.RedisAddr)
	return realtime.NewRedisHub(client), func() { _ = client.Close() }
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
