package main

// @title Landslide Risk Dashboard API
// @version 1.0.0
// @description API дашборда оползневого риска: каталог регионов Нилгири и Палани, зоны риска для карты, наборы данных графиков и состояние сессий дашборда.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/landslide-dashboard/docs"
	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/config"
	"github.com/landslide-dashboard/internal/domain/repository"
	httpDelivery "github.com/landslide-dashboard/internal/delivery/http"
	"github.com/landslide-dashboard/internal/delivery/http/handler"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/pkg/logger"
	"github.com/landslide-dashboard/internal/repository/cache"
	redisRepo "github.com/landslide-dashboard/internal/repository/redis"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/viewstate"
	"github.com/landslide-dashboard/internal/worker"
	"github.com/landslide-dashboard/internal/worker/session"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Landslide Risk Dashboard API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Load region catalog
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
	// каталог неизменяем после загрузки, соединение источника больше не нужно
	if err := closeSource(); err != nil {
		log.Warn("Failed to close catalog source", zap.Error(err))
	}

	// 4. Cache and streams
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
		redisConn  *cache.Redis
	)
	if cfg.Redis.Enabled {
		redisConn, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisConn)
		streamRepo = redisRepo.NewStreamRepository(redisConn.Client(), cfg.Worker.StreamReadTimeout, log)
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewMemoryCacheRepository()
		log.Info("Redis disabled, using in-process cache")
	}

	// 5. Metrics
	metrics, err := observability.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	// 6. Initialize Use Cases
	memo := chart.NewMemo()
	store := viewstate.NewStore(regions, memo, time.Now)

	regionUC := usecase.NewRegionUseCase(regions, log)
	datasetUC := usecase.NewDatasetUseCase(regions, memo, cacheRepo, cfg.Cache.DatasetCacheTTL, metrics, log)
	statsUC := usecase.NewStatsUseCase(regions, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	sessionUC := usecase.NewSessionUseCase(store, streamRepo, metrics, log)
	renderUC := usecase.NewRenderUseCase(regions, datasetUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, metrics, httpDelivery.Handlers{
		Region:  handler.NewRegionHandler(regionUC, log),
		Dataset: handler.NewDatasetHandler(datasetUC, log),
		Session: handler.NewSessionHandler(sessionUC, log),
		Stats:   handler.NewStatsHandler(statsUC, log),
		Render:  handler.NewRenderHandler(renderUC, log),
	})

	// 8. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workers := worker.NewWorkerManager(log)
	workers.Register(session.NewJanitor(sessionUC, cfg.Session.TTL, cfg.Session.SweepInterval, log))
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("regions", regions.Len()),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	if redisConn != nil {
		if err := redisConn.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
