package geo

import (
	"fmt"

	"github.com/landslide-dashboard/internal/domain"
)

// OverallBounds - объединение границ всех регионов для начального вида карты.
// Результат не зависит от порядка регионов.
func OverallBounds(regions []domain.Region) (domain.BoundingBox, error) {
	if len(regions) == 0 {
		return domain.BoundingBox{}, domain.ErrEmptyCatalog
	}

	box := regions[0].Bounds
	for _, r := range regions[1:] {
		box = box.Union(r.Bounds)
	}
	return box, nil
}

// FocusBounds - объединение границ зон риска региона для перелёта к нему
func FocusBounds(region *domain.Region) (domain.BoundingBox, error) {
	if len(region.RiskZones) == 0 {
		return domain.BoundingBox{}, fmt.Errorf("focus bounds for %q: %w", region.ID, domain.ErrNoRiskZones)
	}

	box := region.RiskZones[0].Bounds
	for _, z := range region.RiskZones[1:] {
		box = box.Union(z.Bounds)
	}
	return box, nil
}

// ZonesBounds - охват зон риска всех регионов (покрытие в статистике)
func ZonesBounds(regions []domain.Region) (domain.BoundingBox, error) {
	if len(regions) == 0 {
		return domain.BoundingBox{}, domain.ErrEmptyCatalog
	}

	var box domain.BoundingBox
	for i := range regions {
		focus, err := FocusBounds(&regions[i])
		if err != nil {
			return domain.BoundingBox{}, err
		}
		if i == 0 {
			box = focus
			continue
		}
		box = box.Union(focus)
	}
	return box, nil
}

// FitOptions - параметры анимации fitBounds на клиенте
type FitOptions struct {
	Padding       [2]int  `json:"padding"`
	Duration      float64 `json:"duration"`
	EaseLinearity float64 `json:"ease_linearity"`
}

// DefaultFitOptions - параметры перелёта к выбранному региону
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Padding:       [2]int{50, 50},
		Duration:      1.5,
		EaseLinearity: 0.25,
	}
}
