package main

import (
	"log"

	"github.com/yourorg/news-admin/internal/config"
	"github.com/yourorg/news-admin/internal/repository"
	"github.com/yourorg/news-admin/internal/service"
	"github.com/yourorg/news-admin/internal/storage"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize durable storage
	store, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Create repositories
	newsRepo := repository.NewNewsRepository(store, logger)
	userRepo := repository.NewUserRepository(store, logger)
	adRepo := repository.NewAdvertisementRepository(store, logger)

	// Create services
	authService := service.NewAuthService(cfg, store, logger)
	newsService := service.NewNewsService(newsRepo, cfg, logger)
	userService := service.NewUserService(userRepo, cfg, logger)
	adService := service.NewAdvertisementService(adRepo, newsRepo, logger)
	notificationService := service.NewNotificationService(logger)
	reportService := service.NewReportService(logger)

	logger.Info("admin console ready",
		zap.Int("newsItems", len(newsService.List())),
		zap.Int("users", len(userService.List())),
		zap.Int("advertisements", len(adService.List())),
		zap.Int("reports", len(reportService.All())),
		zap.Int("unreadNotifications", notificationService.UnreadCount()),
		zap.Bool("authenticated", authService.IsAuthenticated()),
	)
}

func createLogger(level string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Create logger config
	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
