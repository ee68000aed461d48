package viewstate

import (
	"fmt"
	"slices"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/domain"
)

// Action - действие пользователя над состоянием сессии
type Action interface {
	apply(s State, c *catalog.Catalog) (State, error)
}

type SelectView struct {
	View domain.View
}

type SelectRegion struct {
	RegionID string
}

type AppendAnalysis struct {
	Analysis domain.Analysis
}

type ToggleLegend struct{}

type SetLegend struct {
	Visible bool
}

type SetRiskFilter struct {
	Levels []domain.RiskLevel
}

type SetBaseLayer struct {
	Layer domain.BaseLayer
}

// Reduce применяет действие к копии состояния. При ошибке возвращается
// исходное состояние без изменений.
func Reduce(s State, a Action, c *catalog.Catalog) (State, error) {
	next, err := a.apply(s.Clone(), c)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (a SelectView) apply(s State, _ *catalog.Catalog) (State, error) {
	if !a.View.Valid() {
		return s, fmt.Errorf("%w: %q", domain.ErrInvalidView, a.View)
	}
	s.ActiveView = a.View
	return s, nil
}

func (a SelectRegion) apply(s State, c *catalog.Catalog) (State, error) {
	if !c.Has(a.RegionID) {
		return s, fmt.Errorf("select region %q: %w", a.RegionID, domain.ErrRegionNotFound)
	}
	s.SelectedRegion = a.RegionID
	return s, nil
}

func (a AppendAnalysis) apply(s State, c *catalog.Catalog) (State, error) {
	if !c.Has(a.Analysis.Region) {
		return s, fmt.Errorf("analysis %q region %q: %w", a.Analysis.ID, a.Analysis.Region, domain.ErrRegionNotFound)
	}
	s.Analyses = append(s.Analyses, a.Analysis)
	return s, nil
}

func (ToggleLegend) apply(s State, _ *catalog.Catalog) (State, error) {
	s.LegendVisible = !s.LegendVisible
	return s, nil
}

func (a SetLegend) apply(s State, _ *catalog.Catalog) (State, error) {
	s.LegendVisible = a.Visible
	return s, nil
}

// Уровни фильтра хранятся без повторов в порядке легенды
func (a SetRiskFilter) apply(s State, _ *catalog.Catalog) (State, error) {
	if len(a.Levels) == 0 {
		return s, domain.ErrEmptyRiskFilter
	}
	for _, l := range a.Levels {
		if !l.Valid() {
			return s, fmt.Errorf("%w: %q", domain.ErrInvalidRiskLevel, l)
		}
	}

	filter := make([]domain.RiskLevel, 0, len(domain.RiskLevels))
	for _, l := range domain.RiskLevels {
		if slices.Contains(a.Levels, l) {
			filter = append(filter, l)
		}
	}
	s.RiskFilter = filter
	return s, nil
}

func (a SetBaseLayer) apply(s State, _ *catalog.Catalog) (State, error) {
	if !a.Layer.Valid() {
		return s, fmt.Errorf("%w: %q", domain.ErrInvalidBaseLayer, a.Layer)
	}
	s.BaseLayer = a.Layer
	return s, nil
}
