package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medimarket/config"
	deliveryHttp "medimarket/internal/delivery/http"
	"medimarket/internal/delivery/http/handler"
	"medimarket/internal/delivery/http/middleware"
	"medimarket/internal/infrastructure/cache"
	"medimarket/internal/infrastructure/database"
	"medimarket/internal/repository"
	"medimarket/internal/service"
	"medimarket/internal/usecase"
	"medimarket/pkg/jwt"
	"medimarket/pkg/validator"

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
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	userRoleRepo := repository.NewUserRoleRepository()
	hospitalRepo := repository.NewHospitalRepository()
	hospitalAdminRepo := repository.NewHospitalAdminRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	insurancePlanRepo := repository.NewInsurancePlanRepository()
	hospitalInsuranceRepo := repository.NewHospitalInsuranceRepository()
	bookingFormFieldRepo := repository.NewBookingFormFieldRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	listingCache := service.NewListingCacheService(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, userRoleRepo, hospitalAdminRepo, auditService, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(db, log, profileRepo, auditService)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, userRoleRepo, hospitalAdminRepo, auditService, listingCache)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, hospitalRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, hospitalRepo, doctorRepo, bookingFormFieldRepo, auditService)
	insurancePlanUsecase := usecase.NewInsurancePlanUsecase(db, log, insurancePlanRepo, hospitalInsuranceRepo, auditService)
	bookingFormUsecase := usecase.NewBookingFormUsecase(db, log, bookingFormFieldRepo, hospitalRepo, auditService)
	statsUsecase := usecase.NewStatsUsecase(db, log, userRepo, hospitalRepo, doctorRepo, appointmentRepo, insurancePlanRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	insurancePlanHandler := handler.NewInsurancePlanHandler(insurancePlanUsecase, customValidator)
	bookingFormHandler := handler.NewBookingFormHandler(bookingFormUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	roleMiddleware := middleware.NewRoleMiddleware(db, log, userRoleRepo, hospitalAdminRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		hospitalHandler,
		doctorHandler,
		appointmentHandler,
		insurancePlanHandler,
		bookingFormHandler,
		statsHandler,
		auditLogHandler,
		authMiddleware,
		roleMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
