package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-vet-clinic/config"
	deliveryHttp "go-vet-clinic/internal/delivery/http"
	"go-vet-clinic/internal/delivery/http/handler"
	"go-vet-clinic/internal/delivery/http/middleware"
	"go-vet-clinic/internal/infrastructure/cache"
	"go-vet-clinic/internal/infrastructure/database"
	"go-vet-clinic/internal/repository"
	"go-vet-clinic/internal/service"
	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/jwt"
	"go-vet-clinic/pkg/validator"

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
	applyLogLevel(cfg.Log.Level)
	config.WatchLogLevel(logrus.StandardLogger())
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone, cfg.App.Env)
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

func applyLogLevel(raw string) {
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL %q, keeping %s", raw, logrus.GetLevel())
		return
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	location := cfg.App.Location()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize token store
	tokenStore := cache.NewTokenStore(redisClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	diseaseRepo := repository.NewDiseaseRepository()
	medicineRepo := repository.NewMedicineRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	weightRepo := repository.NewWeightRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, auditService, jwtService, tokenStore, cfg.App.VerificationExpiry)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, userRepo, doctorProfileRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorProfileRepo, auditService, location)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, diseaseRepo, medicineRepo, auditService)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(db, log, diagnosisRepo, patientRepo, diseaseRepo, appointmentRepo, doctorProfileRepo, auditService, location)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, patientRepo, diagnosisRepo, medicineRepo, doctorProfileRepo, auditService)
	weightUsecase := usecase.NewWeightUsecase(db, log, weightRepo, patientRepo, auditService, location)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, appointmentRepo, medicineRepo, location)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, location)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, location)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	recordHandler := handler.NewRecordHandler(diagnosisUsecase, prescriptionUsecase, weightUsecase, customValidator, location)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, location)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		catalogHandler,
		recordHandler,
		auditLogHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
