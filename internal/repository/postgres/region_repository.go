package postgres

import (
	"context"
	"fmt"

	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// SourceName - имя SQL-источника каталога
const SourceName = "postgres"

type regionRow struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	CenterLat    float64 `db:"center_lat"`
	CenterLon    float64 `db:"center_lon"`
	MinLat       float64 `db:"min_lat"`
	MinLon       float64 `db:"min_lon"`
	MaxLat       float64 `db:"max_lat"`
	MaxLon       float64 `db:"max_lon"`
	CurrentScore int     `db:"current_score"`
}

type zoneRow struct {
	RegionID string  `db:"region_id"`
	MinLat   float64 `db:"min_lat"`
	MinLon   float64 `db:"min_lon"`
	MaxLat   float64 `db:"max_lat"`
	MaxLon   float64 `db:"max_lon"`
	Risk     string  `db:"risk"`
}

type historyRow struct {
	RegionID string `db:"region_id"`
	Score    int    `db:"score"`
}

type factorRow struct {
	RegionID string `db:"region_id"`
	Factor   string `db:"factor"`
	Score    int    `db:"score"`
}

type regionRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRegionRepository создает SQL-источник каталога регионов.
// Запросы не используют специфичный для PostgreSQL синтаксис.
func NewRegionRepository(db *DB, logger *zap.Logger) repository.RegionRepository {
	return &regionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *regionRepository) Source() string {
	return SourceName
}

// LoadRegions читает каталог четырьмя запросами и собирает регионы в памяти
func (r *regionRepository) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	var regionRows []regionRow
	query := fmt.Sprintf(`
		SELECT id, name, center_lat, center_lon, min_lat, min_lon, max_lat, max_lon, current_score
		FROM %s
		ORDER BY sort_order, id`, r.db.Table("regions"))
	if err := r.db.SelectContext(ctx, &regionRows, query); err != nil {
		r.logger.Error("failed to select regions", zap.Error(err))
		return nil, fmt.Errorf("select regions: %w", err)
	}

	var zoneRows []zoneRow
	query = fmt.Sprintf(`
		SELECT region_id, min_lat, min_lon, max_lat, max_lon, risk
		FROM %s
		ORDER BY region_id, position`, r.db.Table("risk_zones"))
	if err := r.db.SelectContext(ctx, &zoneRows, query); err != nil {
		r.logger.Error("failed to select risk zones", zap.Error(err))
		return nil, fmt.Errorf("select risk zones: %w", err)
	}

	var historyRows []historyRow
	query = fmt.Sprintf(`
		SELECT region_id, score
		FROM %s
		ORDER BY region_id, position`, r.db.Table("risk_history"))
	if err := r.db.SelectContext(ctx, &historyRows, query); err != nil {
		r.logger.Error("failed to select risk history", zap.Error(err))
		return nil, fmt.Errorf("select risk history: %w", err)
	}

	var factorRows []factorRow
	query = fmt.Sprintf(`
		SELECT region_id, factor, score
		FROM %s`, r.db.Table("risk_factors"))
	if err := r.db.SelectContext(ctx, &factorRows, query); err != nil {
		r.logger.Error("failed to select risk factors", zap.Error(err))
		return nil, fmt.Errorf("select risk factors: %w", err)
	}

	regions := make([]domain.Region, len(regionRows))
	byID := make(map[string]*domain.Region, len(regionRows))
	for i, row := range regionRows {
		regions[i] = domain.Region{
			ID:     row.ID,
			Name:   row.Name,
			Center: domain.Point{Lat: row.CenterLat, Lon: row.CenterLon},
			Bounds: domain.BoundingBox{MinLat: row.MinLat, MinLon: row.MinLon, MaxLat: row.MaxLat, MaxLon: row.MaxLon},
			RiskScores: domain.RiskScoreRecord{
				Current: row.CurrentScore,
				Factors: make(map[domain.Factor]int),
			},
		}
		byID[row.ID] = &regions[i]
	}

	for _, z := range zoneRows {
		region, ok := byID[z.RegionID]
		if !ok {
			continue
		}
		level, err := domain.ParseRiskLevel(z.Risk)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", z.RegionID, err)
		}
		region.RiskZones = append(region.RiskZones, domain.RiskZone{
			Bounds: domain.BoundingBox{MinLat: z.MinLat, MinLon: z.MinLon, MaxLat: z.MaxLat, MaxLon: z.MaxLon},
			Risk:   level,
		})
	}

	for _, h := range historyRows {
		if region, ok := byID[h.RegionID]; ok {
			region.RiskScores.Historical = append(region.RiskScores.Historical, h.Score)
		}
	}

	for _, f := range factorRows {
		if region, ok := byID[f.RegionID]; ok {
			region.RiskScores.Factors[domain.Factor(f.Factor)] = f.Score
		}
	}

	r.logger.Debug("Regions loaded from database", zap.Int("count", len(regions)))
	return regions, nil
}
