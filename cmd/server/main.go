package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"member-hub.backend/internal/config"
	"member-hub.backend/internal/infrastructure/jobs"
	"member-hub.backend/internal/infrastructure/models"
	"member-hub.backend/internal/infrastructure/repositories"
	"member-hub.backend/internal/interfaces/http/handlers"
	"member-hub.backend/internal/interfaces/http/middleware"
	"member-hub.backend/internal/usecases"
	"member-hub.backend/pkg/jwt"
	"member-hub.backend/pkg/logger"
	"member-hub.backend/pkg/mailer"
	"member-hub.backend/pkg/redis"
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
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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
		if err := db.AutoMigrate(models.AllModels()...); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	followerRepo := repositories.NewFollowerRepository(db)
	socialLinkRepo := repositories.NewSocialLinkRepository(db)
	externalLinkRepo := repositories.NewExternalLinkRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)
	memberBadgeRepo := repositories.NewMemberBadgeRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Code stores for two-factor login, email verification and password resets
	twoFactorCodes := redis.NewCodeStore("2fa", 5*time.Minute)
	verifyTokens := redis.NewCodeStore("verify", 24*time.Hour)
	resetTokens := redis.NewCodeStore("reset", time.Hour)

	// Mail delivery is optional; with no SMTP host configured the mailer
	// is disabled and codes are only reachable through the store
	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, memberRepo, uow, jwtService, twoFactorCodes, verifyTokens, resetTokens, mail)
	userUsecase := usecases.NewUserUsecase(userRepo)
	memberUsecase := usecases.NewMemberUsecase(memberRepo, followerRepo, socialLinkRepo, externalLinkRepo, companyRepo, imageRepo, uow)
	companyUsecase := usecases.NewCompanyUsecase(companyRepo)
	eventUsecase := usecases.NewEventUsecase(eventRepo, companyRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	badgeUsecase := usecases.NewBadgeUsecase(badgeRepo, memberBadgeRepo, memberRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	memberHandler := handlers.NewMemberHandler(memberUsecase)
	companyHandler := handlers.NewCompanyHandler(companyUsecase, memberUsecase, eventUsecase)
	eventHandler := handlers.NewEventHandler(eventUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	badgeHandler := handlers.NewBadgeHandler(badgeUsecase)

	// Auth middleware loads the account so deactivated users are cut off mid-session
	authMiddleware := middleware.AuthMiddleware(jwtService, userRepo)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewNotificationExpiryJob(notificationRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		userHandler:         userHandler,
		memberHandler:       memberHandler,
		companyHandler:      companyHandler,
		eventHandler:        eventHandler,
		notificationHandler: notificationHandler,
		badgeHandler:        badgeHandler,
		authMiddleware:      authMiddleware,
		staffOnly:           middleware.RequireAdminOrModerator(),
		adminOnly:           middleware.RequireAdmin(),
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
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Member-Hub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
