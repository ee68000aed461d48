package static

import (
	"context"

	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
)

// SourceName - имя встроенного источника каталога
const SourceName = "static"

type regionRepository struct{}

// NewRegionRepository возвращает встроенный каталог регионов Нилгири и Палани
func NewRegionRepository() repository.RegionRepository {
	return &regionRepository{}
}

func (r *regionRepository) Source() string {
	return SourceName
}

func (r *regionRepository) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	return Regions(), nil
}

func bbox(lat1, lon1, lat2, lon2 float64) domain.BoundingBox {
	return domain.NewBoundingBox(domain.Point{Lat: lat1, Lon: lon1}, domain.Point{Lat: lat2, Lon: lon2})
}

// Regions возвращает свежую копию встроенных регионов
func Regions() []domain.Region {
	return []domain.Region{
		{
			ID:     "coonoor",
			Name:   "Coonoor, Tamil Nadu",
			Center: domain.Point{Lat: 11.3530, Lon: 76.7959},
			Bounds: bbox(11.3430, 76.7859, 11.3630, 76.8059),
			RiskZones: []domain.RiskZone{
				{Bounds: bbox(11.3480, 76.7900, 11.3500, 76.7920), Risk: domain.RiskHigh},
				{Bounds: bbox(11.3520, 76.7940, 11.3540, 76.7960), Risk: domain.RiskMedium},
				{Bounds: bbox(11.3560, 76.7980, 11.3580, 76.8000), Risk: domain.RiskLow},
			},
			RiskScores: domain.RiskScoreRecord{
				Current:    75,
				Historical: []int{65, 70, 72, 68, 75},
				Factors: map[domain.Factor]int{
					domain.FactorRainfall:   80,
					domain.FactorSlope:      70,
					domain.FactorVegetation: 60,
					domain.FactorGeology:    75,
				},
			},
		},
		{
			ID:     "ooty",
			Name:   "Ooty, Tamil Nadu",
			Center: domain.Point{Lat: 11.4102, Lon: 76.6950},
			Bounds: bbox(11.4002, 76.6850, 11.4202, 76.7050),
			RiskZones: []domain.RiskZone{
				{Bounds: bbox(11.4050, 76.6900, 11.4070, 76.6920), Risk: domain.RiskHigh},
				{Bounds: bbox(11.4090, 76.6930, 11.4110, 76.6950), Risk: domain.RiskMedium},
				{Bounds: bbox(11.4130, 76.6960, 11.4150, 76.6980), Risk: domain.RiskLow},
			},
			RiskScores: domain.RiskScoreRecord{
				Current:    82,
				Historical: []int{70, 75, 78, 80, 82},
				Factors: map[domain.Factor]int{
					domain.FactorRainfall:   85,
					domain.FactorSlope:      80,
					domain.FactorVegetation: 70,
					domain.FactorGeology:    80,
				},
			},
		},
		{
			ID:     "kodaikanal",
			Name:   "Kodaikanal, Tamil Nadu",
			Center: domain.Point{Lat: 10.2381, Lon: 77.4892},
			Bounds: bbox(10.2281, 77.4792, 10.2481, 77.4992),
			RiskZones: []domain.RiskZone{
				{Bounds: bbox(10.2330, 77.4840, 10.2350, 77.4860), Risk: domain.RiskHigh},
				{Bounds: bbox(10.2370, 77.4870, 10.2390, 77.4890), Risk: domain.RiskMedium},
				{Bounds: bbox(10.2410, 77.4900, 10.2430, 77.4920), Risk: domain.RiskLow},
			},
			RiskScores: domain.RiskScoreRecord{
				Current:    68,
				Historical: []int{60, 63, 65, 67, 68},
				Factors: map[domain.Factor]int{
					domain.FactorRainfall:   70,
					domain.FactorSlope:      65,
					domain.FactorVegetation: 75,
					domain.FactorGeology:    65,
				},
			},
		},
	}
}
