package dto

import (
	"github.com/google/uuid"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/viewstate"
)

// SelectViewRequest - переключение вкладки
type SelectViewRequest struct {
	View string `json:"view" validate:"required"`
}

// SelectRegionRequest - выбор региона
type SelectRegionRequest struct {
	RegionID string `json:"region_id" validate:"required"`
}

// LegendRequest - видимость легенды; без поля visible легенда переключается
type LegendRequest struct {
	Visible *bool `json:"visible"`
}

// RiskFilterRequest - видимые уровни риска
type RiskFilterRequest struct {
	Levels []string `json:"levels" validate:"required,min=1,max=3"`
}

// BaseLayerRequest - подложка карты
type BaseLayerRequest struct {
	Layer string `json:"layer" validate:"required"`
}

// SessionResponse - снимок сессии: состояние, каскад выбранного региона и слой карты
// с учётом фильтра уровней. Legend пуст, когда легенда скрыта.
type SessionResponse struct {
	SessionID uuid.UUID         `json:"session_id"`
	State     viewstate.State   `json:"state"`
	Cascade   viewstate.Cascade `json:"cascade"`
	TileURL   string            `json:"tile_url"`
	Overlay   []OverlayZone     `json:"overlay"`
	Legend    []LegendItem      `json:"legend,omitempty"`
}

// LegendItem - строка легенды сессии; Visible - проходит ли уровень фильтр
type LegendItem struct {
	RiskLevelLegend
	Visible bool `json:"visible"`
}

// AnalysisItem - анализ с подписью для кнопки
type AnalysisItem struct {
	domain.Analysis
	Label string `json:"label"`
}

// AnalysisResponse - результат генерации анализа
type AnalysisResponse struct {
	SessionID uuid.UUID    `json:"session_id"`
	Analysis  AnalysisItem `json:"analysis"`
	Total     int          `json:"total"`
}

// AnalysesResponse - список анализов сессии в порядке создания
type AnalysesResponse struct {
	SessionID uuid.UUID      `json:"session_id"`
	Analyses  []AnalysisItem `json:"analyses"`
	Total     int            `json:"total"`
}

func NewAnalysisItem(a domain.Analysis) AnalysisItem {
	return AnalysisItem{Analysis: a, Label: a.Label()}
}
