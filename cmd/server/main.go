package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"qrmenu.backend/internal/config"
	"qrmenu.backend/internal/infrastructure/jobs"
	"qrmenu.backend/internal/infrastructure/repositories"
	"qrmenu.backend/internal/interfaces/http/handlers"
	"qrmenu.backend/internal/interfaces/http/middleware"
	"qrmenu.backend/internal/usecases"
	"qrmenu.backend/pkg/jwt"
	"qrmenu.backend/pkg/logger"
	"qrmenu.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	dishRepo := repositories.NewDishRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, verificationRepo, jwtService)
	menuUsecase := usecases.NewMenuUsecase(restaurantRepo, categoryRepo, dishRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, restaurantRepo, settingsRepo, dishRepo, uow)
	restaurantUsecase := usecases.NewRestaurantUsecase(restaurantRepo, settingsRepo, verificationRepo, uow)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, restaurantRepo, settingsRepo, userRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	publicHandler := handlers.NewPublicHandler(menuUsecase, orderUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	menuHandler := handlers.NewMenuHandler(menuUsecase)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantUsecase, verificationUsecase)
	adminHandler := handlers.NewAdminHandler(verificationUsecase, userRepo, restaurantRepo)

	// Create dual auth middleware
	dualAuthMiddleware := middleware.DualAuthMiddleware(jwtService, sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timeoutJob := jobs.NewOrderTimeoutJob(orderRepo, restaurantRepo, settingsRepo, cfg.Orders.TimeoutSweepInterval)
	go timeoutJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		publicHandler:      publicHandler,
		orderHandler:       orderHandler,
		menuHandler:        menuHandler,
		restaurantHandler:  restaurantHandler,
		adminHandler:       adminHandler,
		dualAuthMiddleware: dualAuthMiddleware,
		idempotencyTTL:     cfg.Orders.IdempotencyTTL,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		timeoutJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 QR-Menu Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
