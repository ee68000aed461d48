package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/config"
	"github.com/landslide-dashboard/internal/pkg/logger"
	"github.com/landslide-dashboard/internal/repository/cache"
	redisRepo "github.com/landslide-dashboard/internal/repository/redis"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/worker"
	"github.com/landslide-dashboard/internal/worker/analysis"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}
	if !cfg.Redis.Enabled {
		fmt.Println("Worker needs Redis streams. Set REDIS_ENABLED=true.")
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting analysis cache warm worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("catalog_source", cfg.Catalog.Source))

	// 3. Region catalog
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	source, closeSource, err := catalog.NewSource(cfg, log)
	if err != nil {
		log.Fatal("Failed to open catalog source", zap.Error(err))
	}
	regions, err := catalog.Load(ctx, source, cfg.Catalog.DefaultRegion, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load region catalog", zap.Error(err))
	}
	if err := closeSource(); err != nil {
		log.Warn("Failed to close catalog source", zap.Error(err))
	}

	// 4. Connect to Redis
	redisConn, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisConn.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(redisConn.Client(), cfg.Worker.StreamReadTimeout, log)
	cacheRepo := cache.NewCacheRepository(redisConn)

	// метрики кеша наборов данных собирает API, у воркера их нет
	datasetUC := usecase.NewDatasetUseCase(regions, chart.NewMemo(), cacheRepo, cfg.Cache.DatasetCacheTTL, nil, log)

	// 5. Workers
	manager := worker.NewWorkerManager(log)
	manager.Register(analysis.NewCacheWarmWorker(streamRepo, datasetUC, cfg.Worker.ConsumerGroup, log))

	workerCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := manager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Worker started")

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker gracefully...")
	stop()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Worker stopped")
}
