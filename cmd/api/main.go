package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightforge/internal/config"
	"brightforge/internal/db"
	"brightforge/internal/email"
	apihttp "brightforge/internal/http"
	"brightforge/internal/repository"
	"brightforge/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Backend de persistencia: se elige una sola vez al arrancar.
	var (
		userRepo    repository.UserRepository
		profileRepo repository.ProfileRepository
		viewRepo    repository.ViewEventRepository
	)
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		userRepo = repository.NewPgUserRepository(pool)
		profileRepo = repository.NewPgProfileRepository(pool)
		viewRepo = repository.NewPgViewEventRepository(pool)
	case "memory":
		store := repository.NewMemoryStore()
		userRepo = store
		profileRepo = store
		viewRepo = store
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.StoreBackend))
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var cadenceGuard service.CadenceGuard
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cadenceGuard = service.NewRedisCadenceGuard(redisClient, cfg.ReminderCooldown)
		}
		cancel()
	}

	recSvc := service.NewRecommendationService(logger, profileRepo)
	engSvc := service.NewEngagementService(logger, viewRepo)
	scheduler := service.NewReminderScheduler(
		logger,
		userRepo,
		viewRepo,
		engSvc,
		emailSender,
		cadenceGuard,
		cfg.ReminderSweepInterval,
		cfg.ReminderCooldown,
	)
	scheduler.Start()
	defer scheduler.Stop()

	profileHandler := apihttp.NewProfileHandler(logger, recSvc)
	engagementHandler := apihttp.NewEngagementHandler(logger, engSvc)
	router := apihttp.NewRouter(logger, profileHandler, engagementHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
