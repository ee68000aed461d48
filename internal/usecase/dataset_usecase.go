package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"go.uber.org/zap"
)

// Виды наборов данных
const (
	DatasetFactors    = "factors"
	DatasetHistorical = "historical"
)

// DatasetCacheKey - ключ набора данных во внешнем кеше. version - отпечаток каталога:
// после изменения каталога старые записи просто перестают читаться.
func DatasetCacheKey(version, kind, regionID string) string {
	return fmt.Sprintf("dataset:%s:%s:%s", version, kind, regionID)
}

// DatasetUseCase отдаёт наборы данных графиков: memo процесса, затем кеш, затем построение
type DatasetUseCase struct {
	catalog   *catalog.Catalog
	memo      *chart.Memo
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewDatasetUseCase создает новый экземпляр DatasetUseCase
func NewDatasetUseCase(
	c *catalog.Catalog,
	memo *chart.Memo,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	metrics *observability.Collector,
	logger *zap.Logger,
) *DatasetUseCase {
	return &DatasetUseCase{
		catalog:   c,
		memo:      memo,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		metrics:   metrics,
		logger:    logger,
	}
}

// FactorDataset возвращает набор факторов риска и источник ответа (memo, hit, miss)
func (uc *DatasetUseCase) FactorDataset(ctx context.Context, regionID string) (domain.CategorySeries, string, error) {
	region, err := uc.catalog.Get(regionID)
	if err != nil {
		return domain.CategorySeries{}, "", err
	}

	// 1. Memo процесса
	if ds, ok := uc.memo.PeekFactors(regionID); ok {
		uc.metrics.DatasetCache(DatasetFactors, observability.CacheHitMemo)
		return ds, observability.CacheHitMemo, nil
	}

	// 2. Внешний кеш. В memo значения из кеша не попадают: его делят сессии.
	key := uc.cacheKey(DatasetFactors, regionID)
	var cached domain.CategorySeries
	if uc.readCache(ctx, key, &cached) {
		err = chart.VerifyFactorDataset(&region, cached)
		if err == nil {
			uc.metrics.DatasetCache(DatasetFactors, observability.CacheHitStore)
			return cached, observability.CacheHitStore, nil
		}
		uc.logger.Warn("Stale dataset in cache", zap.String("key", key), zap.Error(err))
	}

	// 3. Строим и кешируем (устаревшая запись перезаписывается)
	ds, _, err := uc.memo.Factors(&region)
	if err != nil {
		uc.logger.Error("Failed to build factor dataset", zap.String("region_id", regionID), zap.Error(err))
		return domain.CategorySeries{}, "", err
	}
	uc.writeCache(ctx, key, ds)
	uc.metrics.DatasetCache(DatasetFactors, observability.CacheMiss)

	return ds, observability.CacheMiss, nil
}

// HistoricalDataset возвращает ряд истории оценок и источник ответа
func (uc *DatasetUseCase) HistoricalDataset(ctx context.Context, regionID string) (domain.TimeSeries, string, error) {
	region, err := uc.catalog.Get(regionID)
	if err != nil {
		return domain.TimeSeries{}, "", err
	}

	if ds, ok := uc.memo.PeekHistorical(regionID); ok {
		uc.metrics.DatasetCache(DatasetHistorical, observability.CacheHitMemo)
		return ds, observability.CacheHitMemo, nil
	}

	key := uc.cacheKey(DatasetHistorical, regionID)
	var cached domain.TimeSeries
	if uc.readCache(ctx, key, &cached) {
		err = chart.VerifyHistoricalDataset(&region, cached)
		if err == nil {
			uc.metrics.DatasetCache(DatasetHistorical, observability.CacheHitStore)
			return cached, observability.CacheHitStore, nil
		}
		uc.logger.Warn("Stale dataset in cache", zap.String("key", key), zap.Error(err))
	}

	ds, _, err := uc.memo.Historical(&region)
	if err != nil {
		uc.logger.Error("Failed to build historical dataset", zap.String("region_id", regionID), zap.Error(err))
		return domain.TimeSeries{}, "", err
	}
	uc.writeCache(ctx, key, ds)
	uc.metrics.DatasetCache(DatasetHistorical, observability.CacheMiss)

	return ds, observability.CacheMiss, nil
}

// Summary - карточки аналитики региона с трендом истории оценок
func (uc *DatasetUseCase) Summary(ctx context.Context, regionID string) (*domain.RegionSummary, error) {
	region, err := uc.catalog.Get(regionID)
	if err != nil {
		return nil, err
	}

	historical, _, err := uc.HistoricalDataset(ctx, regionID)
	if err != nil {
		return nil, err
	}

	focus, err := geo.FocusBounds(&region)
	if err != nil {
		return nil, err
	}

	byRisk := make(map[string]int, len(domain.RiskLevels))
	for _, l := range domain.RiskLevels {
		byRisk[string(l)] = region.ZoneCount(l)
	}

	return &domain.RegionSummary{
		RegionID:      region.ID,
		RegionName:    region.Name,
		CurrentScore:  region.RiskScores.Current,
		HighRiskAreas: region.HighRiskZoneCount(),
		ZonesByRisk:   byRisk,
		Trend:         chart.Trend(historical.Values),
		FocusAreaSqKm: geo.BoxAreaSqKm(focus),
	}, nil
}

// WarmRegion прогревает оба набора данных региона
func (uc *DatasetUseCase) WarmRegion(ctx context.Context, regionID string) error {
	region, err := uc.catalog.Get(regionID)
	if err != nil {
		return err
	}

	// memo процесса не гарантирует запись во внешний кеш: TTL там мог истечь
	factors, _, err := uc.memo.Factors(&region)
	if err != nil {
		return fmt.Errorf("warm factors for %q: %w", regionID, err)
	}
	uc.ensureCached(ctx, uc.cacheKey(DatasetFactors, regionID), factors)

	historical, _, err := uc.memo.Historical(&region)
	if err != nil {
		return fmt.Errorf("warm historical for %q: %w", regionID, err)
	}
	uc.ensureCached(ctx, uc.cacheKey(DatasetHistorical, regionID), historical)

	return nil
}

func (uc *DatasetUseCase) cacheKey(kind, regionID string) string {
	return DatasetCacheKey(uc.catalog.Fingerprint(), kind, regionID)
}

func (uc *DatasetUseCase) ensureCached(ctx context.Context, key string, v interface{}) {
	exists, err := uc.cacheRepo.Exists(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to check dataset cache", zap.String("key", key), zap.Error(err))
	}
	if exists {
		return
	}
	uc.writeCache(ctx, key, v)
}

// readCache возвращает true только при успешно декодированном значении.
// Ошибки кеша не ломают запрос: набор данных всегда можно построить заново.
func (uc *DatasetUseCase) readCache(ctx context.Context, key string, dst interface{}) bool {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get dataset from cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		uc.logger.Warn("Corrupted dataset in cache", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (uc *DatasetUseCase) writeCache(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		uc.logger.Warn("Failed to marshal dataset", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.ttl); err != nil {
		uc.logger.Warn("Failed to cache dataset", zap.String("key", key), zap.Error(err))
	}
}
