package viewstate

import (
	"slices"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/domain"
)

// State - явное состояние сессии дашборда
type State struct {
	ActiveView     domain.View        `json:"active_view"`
	SelectedRegion string             `json:"selected_region"`
	Analyses       []domain.Analysis  `json:"analyses"`
	LegendVisible  bool               `json:"legend_visible"`
	RiskFilter     []domain.RiskLevel `json:"risk_filter"`
	BaseLayer      domain.BaseLayer   `json:"base_layer"`
}

// Initial - состояние новой сессии: карта, регион по умолчанию, начальный анализ
func Initial(c *catalog.Catalog) State {
	return State{
		ActiveView:     domain.ViewMap,
		SelectedRegion: c.DefaultID(),
		Analyses:       domain.SeedAnalyses(),
		LegendVisible:  true,
		RiskFilter:     slices.Clone(domain.RiskLevels),
		BaseLayer:      domain.LayerStreet,
	}
}

// Clone возвращает глубокую копию состояния
func (s State) Clone() State {
	s.Analyses = slices.Clone(s.Analyses)
	s.RiskFilter = slices.Clone(s.RiskFilter)
	return s
}

// Shows сообщает, видны ли зоны уровня level при текущем фильтре
func (s State) Shows(level domain.RiskLevel) bool {
	return slices.Contains(s.RiskFilter, level)
}
