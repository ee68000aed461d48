package file

import (
	"context"
	"fmt"
	"os"

	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SourceName - имя файлового источника каталога
const SourceName = "file"

// catalogDocument - формат YAML-файла каталога. Координаты записываются
// парами [lat, lon], как их принимает карта на клиенте.
type catalogDocument struct {
	Regions []regionDocument `yaml:"regions"`
}

type regionDocument struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Center     [2]float64     `yaml:"center"`
	Bounds     [2][2]float64  `yaml:"bounds"`
	RiskZones  []zoneDocument `yaml:"risk_zones"`
	RiskScores scoresDocument `yaml:"risk_scores"`
}

type zoneDocument struct {
	Bounds [2][2]float64 `yaml:"bounds"`
	Risk   string        `yaml:"risk"`
}

type scoresDocument struct {
	Current    int            `yaml:"current"`
	Historical []int          `yaml:"historical"`
	Factors    map[string]int `yaml:"factors"`
}

type regionRepository struct {
	path   string
	logger *zap.Logger
}

// NewRegionRepository создает источник каталога из YAML-файла
func NewRegionRepository(path string, logger *zap.Logger) repository.RegionRepository {
	return &regionRepository{
		path:   path,
		logger: logger,
	}
}

func (r *regionRepository) Source() string {
	return SourceName
}

func (r *regionRepository) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	regions, err := Decode(data)
	if err != nil {
		r.logger.Error("Failed to decode catalog file", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}

	r.logger.Debug("Catalog file decoded",
		zap.String("path", r.path),
		zap.Int("regions", len(regions)),
	)
	return regions, nil
}

// Decode разбирает YAML-документ каталога
func Decode(data []byte) ([]domain.Region, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	regions := make([]domain.Region, 0, len(doc.Regions))
	for _, rd := range doc.Regions {
		region := domain.Region{
			ID:     rd.ID,
			Name:   rd.Name,
			Center: domain.Point{Lat: rd.Center[0], Lon: rd.Center[1]},
			Bounds: toBox(rd.Bounds),
			RiskScores: domain.RiskScoreRecord{
				Current:    rd.RiskScores.Current,
				Historical: rd.RiskScores.Historical,
				Factors:    make(map[domain.Factor]int, len(rd.RiskScores.Factors)),
			},
		}

		for _, zd := range rd.RiskZones {
			level, err := domain.ParseRiskLevel(zd.Risk)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", rd.ID, err)
			}
			region.RiskZones = append(region.RiskZones, domain.RiskZone{
				Bounds: toBox(zd.Bounds),
				Risk:   level,
			})
		}

		for name, score := range rd.RiskScores.Factors {
			region.RiskScores.Factors[domain.Factor(name)] = score
		}

		regions = append(regions, region)
	}

	return regions, nil
}

func toBox(corners [2][2]float64) domain.BoundingBox {
	return domain.NewBoundingBox(
		domain.Point{Lat: corners[0][0], Lon: corners[0][1]},
		domain.Point{Lat: corners[1][0], Lon: corners[1][1]},
	)
}
