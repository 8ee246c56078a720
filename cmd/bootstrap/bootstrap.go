package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloodlink-api/config"
	deliveryHttp "bloodlink-api/internal/delivery/http"
	"bloodlink-api/internal/delivery/http/handler"
	"bloodlink-api/internal/delivery/http/middleware"
	"bloodlink-api/internal/infrastructure/cache"
	"bloodlink-api/internal/infrastructure/database"
	"bloodlink-api/internal/repository"
	"bloodlink-api/internal/service"
	"bloodlink-api/internal/session"
	"bloodlink-api/internal/usecase"
	"bloodlink-api/pkg/jwt"
	"bloodlink-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	dashboard usecase.DashboardUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, err
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server, app.dashboard = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, usecase.DashboardUsecase) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Initialize services
	sessions := session.NewStore(redisClient)
	notifier := service.NewRedisNotifier(redisClient, log)
	activity := service.NewActivityService(log, activityRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, txManager, userRepo, donationRepo, requestRepo, jwtService, sessions, activity, notifier)
	donationUsecase := usecase.NewDonationUsecase(log, donationRepo, activity, notifier)
	requestUsecase := usecase.NewRequestUsecase(log, requestRepo, activity, notifier)
	dashboardUsecase := usecase.NewDashboardUsecase(log, donationRepo, requestRepo, notifier, redisClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	donationHandler := handler.NewDonationHandler(donationUsecase, customValidator)
	requestHandler := handler.NewRequestHandler(requestUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, donationHandler, requestHandler, dashboardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, dashboardUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Keep the stats snapshot fresh while the server runs.
	if err := app.dashboard.Start(context.Background()); err != nil {
		logrus.Fatalf("Failed to start change subscriber: %v", err)
	}

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.dashboard.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
