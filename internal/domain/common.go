package domain

import (
	"math"
	"time"
)

type Point struct {
	Lat float64 `json:"lat" db:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" db:"lon" validate:"min=-180,max=180"`
}

// BoundingBox - прямоугольная область, заданная двумя углами (юго-запад и северо-восток)
type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat" validate:"min=-90,max=90"`
	MinLon float64 `json:"min_lon" db:"min_lon" validate:"min=-180,max=180"`
	MaxLat float64 `json:"max_lat" db:"max_lat" validate:"min=-90,max=90,gtefield=MinLat"`
	MaxLon float64 `json:"max_lon" db:"max_lon" validate:"min=-180,max=180,gtefield=MinLon"`
}

// NewBoundingBox строит бокс по двум произвольным углам, нормализуя порядок
func NewBoundingBox(a, b Point) BoundingBox {
	return BoundingBox{
		MinLat: math.Min(a.Lat, b.Lat),
		MinLon: math.Min(a.Lon, b.Lon),
		MaxLat: math.Max(a.Lat, b.Lat),
		MaxLon: math.Max(a.Lon, b.Lon),
	}
}

// Union возвращает минимальный бокс, покрывающий оба бокса
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		MinLat: math.Min(b.MinLat, o.MinLat),
		MinLon: math.Min(b.MinLon, o.MinLon),
		MaxLat: math.Max(b.MaxLat, o.MaxLat),
		MaxLon: math.Max(b.MaxLon, o.MaxLon),
	}
}

// Contains проверяет, что o целиком лежит внутри b (границы включительно)
func (b BoundingBox) Contains(o BoundingBox) bool {
	return o.MinLat >= b.MinLat && o.MaxLat <= b.MaxLat &&
		o.MinLon >= b.MinLon && o.MaxLon <= b.MaxLon
}

// Intersects проверяет пересечение боксов
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return o.MinLat <= b.MaxLat && o.MaxLat >= b.MinLat &&
		o.MinLon <= b.MaxLon && o.MaxLon >= b.MinLon
}

func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Corners - углы в формате карты: [[south, west], [north, east]]
func (b BoundingBox) Corners() [2][2]float64 {
	return [2][2]float64{
		{b.MinLat, b.MinLon},
		{b.MaxLat, b.MaxLon},
	}
}

// Statistics - сводная статистика по каталогу регионов
type Statistics struct {
	Regions     RegionStats   `json:"regions"`
	Zones       ZoneStats     `json:"zones"`
	Scores      ScoreStats    `json:"scores"`
	Coverage    CoverageStats `json:"coverage"`
	LastUpdated time.Time     `json:"last_updated"`
	DataVersion string        `json:"data_version"`
}

// RegionStats статистика по регионам
type RegionStats struct {
	TotalRegions int    `json:"total_regions"`
	Source       string `json:"source"`
}

// ZoneStats статистика по зонам риска
type ZoneStats struct {
	TotalZones int            `json:"total_zones"`
	ByRisk     map[string]int `json:"by_risk"`
}

// ScoreStats статистика текущих оценок риска
type ScoreStats struct {
	Average       float64 `json:"average"`
	Max           int     `json:"max"`
	Min           int     `json:"min"`
	HighestRegion string  `json:"highest_region"`
}

// CoverageStats статистика покрытия территории
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	CenterLat  float64 `json:"center_lat"`
	CenterLon  float64 `json:"center_lon"`
	AreaSqKm   float64 `json:"area_sq_km"`
	// RiskBBox - охват всех зон риска; нет, если у какого-то региона нет зон
	RiskBBox     *BoundingBox `json:"risk_bbox,omitempty"`
	RiskAreaSqKm float64      `json:"risk_area_sq_km,omitempty"`
}
