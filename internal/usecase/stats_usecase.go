package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// StatsDataVersion - версия формата статистики в кеше
const StatsDataVersion = "2"

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	catalog   *catalog.Catalog
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	c *catalog.Catalog,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		catalog:   c,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger,
	}
}

// GetStatistics возвращает статистику и признак ответа из кеша
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, bool, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	// запись старого формата пересчитывается
	if err == nil && cached != nil && cached.DataVersion == StatsDataVersion {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, true, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Считаем по каталогу
	stats, err := uc.RefreshStatistics(ctx)
	if err != nil {
		return nil, false, err
	}
	return stats, false, nil
}

// RefreshStatistics принудительно пересчитывает статистику и обновляет кеш
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.compute()
	if err != nil {
		return nil, fmt.Errorf("compute statistics: %w", err)
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.ttl); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
		// Не возвращаем ошибку, т.к. данные уже получены
	} else {
		uc.logger.Debug("Statistics cached successfully")
	}

	return stats, nil
}

func (uc *StatsUseCase) compute() (*domain.Statistics, error) {
	regions := uc.catalog.Regions()

	overall, err := geo.OverallBounds(regions)
	if err != nil {
		return nil, err
	}

	byRisk := make(map[string]int, len(domain.RiskLevels))
	totalZones := 0
	scores := make([]float64, len(regions))
	scoreStats := domain.ScoreStats{Min: regions[0].RiskScores.Current}

	for i := range regions {
		r := &regions[i]
		for _, l := range domain.RiskLevels {
			byRisk[string(l)] += r.ZoneCount(l)
		}
		totalZones += len(r.RiskZones)

		cur := r.RiskScores.Current
		scores[i] = float64(cur)
		if cur > scoreStats.Max || scoreStats.HighestRegion == "" {
			scoreStats.Max = cur
			scoreStats.HighestRegion = r.ID
		}
		if cur < scoreStats.Min {
			scoreStats.Min = cur
		}
	}
	scoreStats.Average = round2(stat.Mean(scores, nil))

	center := overall.Center()

	coverage := domain.CoverageStats{
		BBoxMinLat: overall.MinLat,
		BBoxMaxLat: overall.MaxLat,
		BBoxMinLon: overall.MinLon,
		BBoxMaxLon: overall.MaxLon,
		CenterLat:  center.Lat,
		CenterLon:  center.Lon,
		AreaSqKm:   round2(geo.BoxAreaSqKm(overall)),
	}
	if zones, err := geo.ZonesBounds(regions); err == nil {
		coverage.RiskBBox = &zones
		coverage.RiskAreaSqKm = round2(geo.BoxAreaSqKm(zones))
	} else {
		uc.logger.Debug("Risk coverage skipped", zap.Error(err))
	}

	return &domain.Statistics{
		Regions: domain.RegionStats{
			TotalRegions: len(regions),
			Source:       uc.catalog.Source(),
		},
		Zones: domain.ZoneStats{
			TotalZones: totalZones,
			ByRisk:     byRisk,
		},
		Scores: scoreStats,
		Coverage:    coverage,
		LastUpdated: uc.now().UTC(),
		DataVersion: StatsDataVersion,
	}, nil
}
