package dto

import (
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/pkg/geo"
)

// OverlayRequest - параметры слоя зон риска на карте
type OverlayRequest struct {
	Selected string `query:"selected"`
	// Risk - уровни через запятую; пусто означает все уровни
	Risk string `query:"risk"`
}

// RegionListItem - элемент списка выбора региона
type RegionListItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Center        domain.Point `json:"center"`
	CurrentScore  int          `json:"current_score"`
	HighRiskAreas int          `json:"high_risk_areas"`
}

// RegionListResponse - каталог регионов в каноническом порядке
type RegionListResponse struct {
	Regions       []RegionListItem `json:"regions"`
	DefaultRegion string           `json:"default_region"`
	Total         int              `json:"total"`
}

// ZoneResponse - зона риска с цветом политики
type ZoneResponse struct {
	Bounds  domain.BoundingBox `json:"bounds"`
	Corners [2][2]float64      `json:"corners"`
	Risk    domain.RiskLevel   `json:"risk"`
	Color   string             `json:"color"`
	Popup   string             `json:"popup"`
}

// RegionDetailResponse - полная карточка региона
type RegionDetailResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Center     domain.Point           `json:"center"`
	Bounds     domain.BoundingBox     `json:"bounds"`
	Zones      []ZoneResponse         `json:"zones"`
	RiskScores domain.RiskScoreRecord `json:"risk_scores"`
}

// BoundsResponse - охватывающий бокс для начального вида карты
type BoundsResponse struct {
	Bounds  domain.BoundingBox `json:"bounds"`
	Corners [2][2]float64      `json:"corners"`
	Center  domain.Point       `json:"center"`
}

// FocusResponse - бокс и параметры перелёта к выбранному региону
type FocusResponse struct {
	RegionID string             `json:"region_id"`
	Bounds   domain.BoundingBox `json:"bounds"`
	Corners  [2][2]float64      `json:"corners"`
	Fit      geo.FitOptions     `json:"fit_options"`
}

// OverlayZone - прямоугольник зоны со стилем отрисовки
type OverlayZone struct {
	RegionID string             `json:"region_id"`
	Corners  [2][2]float64      `json:"corners"`
	Risk     domain.RiskLevel   `json:"risk"`
	Style    domain.ZoneStyle   `json:"style"`
	Popup    string             `json:"popup"`
	Bounds   domain.BoundingBox `json:"bounds"`
}

// OverlayResponse - все видимые зоны всех регионов
type OverlayResponse struct {
	Selected string             `json:"selected,omitempty"`
	Levels   []domain.RiskLevel `json:"levels"`
	Zones    []OverlayZone      `json:"zones"`
}

// RiskLevelLegend - строка легенды карты
type RiskLevelLegend struct {
	Level domain.RiskLevel `json:"level"`
	Label string           `json:"label"`
	Color string           `json:"color"`
}
