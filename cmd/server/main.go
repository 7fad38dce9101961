package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shelfmatch/backend/config"
	httpDelivery "github.com/shelfmatch/backend/internal/delivery/http"
	"github.com/shelfmatch/backend/internal/domain"
	"github.com/shelfmatch/backend/internal/infrastructure/cache"
	"github.com/shelfmatch/backend/internal/infrastructure/inventory"
	"github.com/shelfmatch/backend/internal/pkg/logging"
	"github.com/shelfmatch/backend/internal/usecase"
)

func main() {
	// A missing .env file is fine; env vars may come from the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting shelfmatch backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type),
	)

	// Initialize infrastructure dependencies
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		cacheRepo = redisCache
		logger.Info("redis cache connected", zap.Duration("ttl", cfg.Cache.TTL))
	default:
		cacheRepo = cache.NewMemoryCache()
		logger.Info("in-memory cache initialized", zap.Duration("ttl", cfg.Cache.TTL))
	}

	store := inventory.NewStore()

	// Initialize usecase layer
	matcher := usecase.NewMatchingService(usecase.MatchConfig{
		TopN:   cfg.Matching.TopN,
		Logger: logger,
	})
	duplicates := usecase.NewDuplicateService(cfg.Matching.DuplicateThreshold)
	normalizer := usecase.NewNormalizerService(usecase.NormalizerConfig{
		LowConfidenceThreshold: cfg.Matching.LowConfidenceThreshold,
		Logger:                 logger,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(httpDelivery.HandlerConfig{
		Matcher:    matcher,
		Duplicates: duplicates,
		Normalizer: normalizer,
		Searcher:   store,
		Records:    store,
		Cache:      cacheRepo,
		CacheTTL:   cfg.Cache.TTL,
		Logger:     logger,
	})

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
