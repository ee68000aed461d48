package chart

import (
	"slices"
	"sync"

	"github.com/landslide-dashboard/internal/domain"
)

// Memo запоминает наборы данных по id региона. Записи попадают сюда только
// из построителей, каталог неизменяем, поэтому они никогда не инвалидируются.
type Memo struct {
	mu         sync.RWMutex
	factors    map[string]domain.CategorySeries
	historical map[string]domain.TimeSeries
}

func NewMemo() *Memo {
	return &Memo{
		factors:    make(map[string]domain.CategorySeries),
		historical: make(map[string]domain.TimeSeries),
	}
}

// Factors возвращает набор факторов и признак попадания в memo
func (m *Memo) Factors(region *domain.Region) (domain.CategorySeries, bool, error) {
	m.mu.RLock()
	ds, ok := m.factors[region.ID]
	m.mu.RUnlock()
	if ok {
		return cloneCategory(ds), true, nil
	}

	ds, err := BuildFactorDataset(region)
	if err != nil {
		return domain.CategorySeries{}, false, err
	}

	m.mu.Lock()
	m.factors[region.ID] = ds
	m.mu.Unlock()
	return cloneCategory(ds), false, nil
}

// Historical возвращает исторический ряд и признак попадания в memo
func (m *Memo) Historical(region *domain.Region) (domain.TimeSeries, bool, error) {
	m.mu.RLock()
	ds, ok := m.historical[region.ID]
	m.mu.RUnlock()
	if ok {
		return cloneTime(ds), true, nil
	}

	ds, err := BuildHistoricalDataset(region)
	if err != nil {
		return domain.TimeSeries{}, false, err
	}

	m.mu.Lock()
	m.historical[region.ID] = ds
	m.mu.Unlock()
	return cloneTime(ds), false, nil
}

// PeekFactors возвращает набор только если он уже есть в memo
func (m *Memo) PeekFactors(regionID string) (domain.CategorySeries, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, ok := m.factors[regionID]
	if !ok {
		return domain.CategorySeries{}, false
	}
	return cloneCategory(ds), true
}

func (m *Memo) PeekHistorical(regionID string) (domain.TimeSeries, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, ok := m.historical[regionID]
	if !ok {
		return domain.TimeSeries{}, false
	}
	return cloneTime(ds), true
}

func cloneCategory(ds domain.CategorySeries) domain.CategorySeries {
	ds.Labels = slices.Clone(ds.Labels)
	ds.Values = slices.Clone(ds.Values)
	ds.BackgroundColors = slices.Clone(ds.BackgroundColors)
	ds.BorderColors = slices.Clone(ds.BorderColors)
	return ds
}

func cloneTime(ds domain.TimeSeries) domain.TimeSeries {
	ds.Labels = slices.Clone(ds.Labels)
	ds.Values = slices.Clone(ds.Values)
	return ds
}
