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

	"stayhub.admin/internal/config"
	"stayhub.admin/internal/infrastructure/jobs"
	"stayhub.admin/internal/infrastructure/repositories"
	"stayhub.admin/internal/interfaces/http/handlers"
	"stayhub.admin/internal/usecases"
	"stayhub.admin/pkg/crypto"
	"stayhub.admin/pkg/jwt"
	"stayhub.admin/pkg/logger"
	"stayhub.admin/pkg/redis"
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
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	secretbox, err := crypto.NewSecretbox(cfg.Security.ApiKeyEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize api key secretbox: %w", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	verifRepo := repositories.NewVerificationRepository(db)
	platformRepo := repositories.NewPlatformRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService)
	userUsecase := usecases.NewUserUsecase(userRepo, auditRepo)
	verifUsecase := usecases.NewVerificationUsecase(verifRepo, userRepo, platformRepo, auditRepo, secretbox)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	verifHandler := handlers.NewVerificationHandler(verifUsecase)

	// Background sync job
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncJob := jobs.NewPlatformSyncJob(platformRepo, userRepo, secretbox, cfg.Sync.Interval)
	if cfg.Sync.Enabled {
		go syncJob.Start(ctx)
	}

	r := buildRouter(jwtService, routeDeps{
		authHandler:  authHandler,
		userHandler:  userHandler,
		verifHandler: verifHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if cfg.Sync.Enabled {
			syncJob.Stop()
		}
		cancel()
	}()

	log.Printf("Admin console API starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
