package usecase

import (
	"fmt"
	"strings"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"github.com/landslide-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// RegionUseCase отдаёт каталог регионов, боксы карты и слой зон риска
type RegionUseCase struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewRegionUseCase создает новый экземпляр RegionUseCase
func NewRegionUseCase(c *catalog.Catalog, logger *zap.Logger) *RegionUseCase {
	return &RegionUseCase{
		catalog: c,
		logger:  logger,
	}
}

// ListRegions возвращает регионы в каноническом порядке
func (uc *RegionUseCase) ListRegions() *dto.RegionListResponse {
	regions := uc.catalog.Regions()
	items := make([]dto.RegionListItem, len(regions))
	for i := range regions {
		r := &regions[i]
		items[i] = dto.RegionListItem{
			ID:            r.ID,
			Name:          r.Name,
			Center:        r.Center,
			CurrentScore:  r.RiskScores.Current,
			HighRiskAreas: r.HighRiskZoneCount(),
		}
	}

	return &dto.RegionListResponse{
		Regions:       items,
		DefaultRegion: uc.catalog.DefaultID(),
		Total:         len(items),
	}
}

// GetRegion возвращает регион с раскрашенными зонами
func (uc *RegionUseCase) GetRegion(id string) (*dto.RegionDetailResponse, error) {
	r, err := uc.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	zones := make([]dto.ZoneResponse, len(r.RiskZones))
	for i, z := range r.RiskZones {
		zones[i] = dto.ZoneResponse{
			Bounds:  z.Bounds,
			Corners: z.Bounds.Corners(),
			Risk:    z.Risk,
			Color:   domain.RiskColor(z.Risk),
			Popup:   domain.PopupText(z.Risk, r.Name),
		}
	}

	return &dto.RegionDetailResponse{
		ID:         r.ID,
		Name:       r.Name,
		Center:     r.Center,
		Bounds:     r.Bounds,
		Zones:      zones,
		RiskScores: r.RiskScores,
	}, nil
}

// OverallBounds - бокс, охватывающий все регионы каталога
func (uc *RegionUseCase) OverallBounds() (*dto.BoundsResponse, error) {
	box, err := geo.OverallBounds(uc.catalog.Regions())
	if err != nil {
		return nil, err
	}

	return &dto.BoundsResponse{
		Bounds:  box,
		Corners: box.Corners(),
		Center:  box.Center(),
	}, nil
}

// FocusBounds - бокс зон риска региона с параметрами анимации
func (uc *RegionUseCase) FocusBounds(id string) (*dto.FocusResponse, error) {
	r, err := uc.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	box, err := geo.FocusBounds(&r)
	if err != nil {
		uc.logger.Error("Region has no risk zones", zap.String("region_id", id))
		return nil, err
	}

	return &dto.FocusResponse{
		RegionID: r.ID,
		Bounds:   box,
		Corners:  box.Corners(),
		Fit:      geo.DefaultFitOptions(),
	}, nil
}

// Overlay возвращает зоны всех регионов со стилями; зоны выбранного региона выделены
func (uc *RegionUseCase) Overlay(req dto.OverlayRequest) (*dto.OverlayResponse, error) {
	if req.Selected != "" && !uc.catalog.Has(req.Selected) {
		return nil, fmt.Errorf("overlay selected %q: %w", req.Selected, domain.ErrRegionNotFound)
	}

	levels, err := ParseRiskLevels(req.Risk)
	if err != nil {
		return nil, err
	}

	return &dto.OverlayResponse{
		Selected: req.Selected,
		Levels:   levels,
		Zones:    OverlayZones(uc.catalog.Regions(), req.Selected, levels),
	}, nil
}

// RiskLevels - легенда карты в порядке убывания риска
func (uc *RegionUseCase) RiskLevels() []dto.RiskLevelLegend {
	return riskLegend()
}

func riskLegend() []dto.RiskLevelLegend {
	out := make([]dto.RiskLevelLegend, len(domain.RiskLevels))
	for i, l := range domain.RiskLevels {
		out[i] = dto.RiskLevelLegend{
			Level: l,
			Label: l.Title() + " Risk",
			Color: domain.RiskColor(l),
		}
	}
	return out
}

func (uc *RegionUseCase) Hotspots() []domain.Hotspot {
	return domain.Hotspots()
}

// OverlayZones раскладывает зоны регионов в слой карты, оставляя только уровни levels
func OverlayZones(regions []domain.Region, selected string, levels []domain.RiskLevel) []dto.OverlayZone {
	visible := make(map[domain.RiskLevel]bool, len(levels))
	for _, l := range levels {
		visible[l] = true
	}

	zones := make([]dto.OverlayZone, 0)
	for _, r := range regions {
		for _, z := range r.RiskZones {
			if !visible[z.Risk] {
				continue
			}
			zones = append(zones, dto.OverlayZone{
				RegionID: r.ID,
				Corners:  z.Bounds.Corners(),
				Risk:     z.Risk,
				Style:    domain.StyleForZone(z.Risk, r.ID == selected),
				Popup:    domain.PopupText(z.Risk, r.Name),
				Bounds:   z.Bounds,
			})
		}
	}
	return zones
}

// ParseRiskLevels разбирает список уровней через запятую. Пустая строка - все уровни.
func ParseRiskLevels(s string) ([]domain.RiskLevel, error) {
	if strings.TrimSpace(s) == "" {
		return append([]domain.RiskLevel(nil), domain.RiskLevels...), nil
	}

	seen := make(map[domain.RiskLevel]bool)
	for _, part := range strings.Split(s, ",") {
		l, err := domain.ParseRiskLevel(part)
		if err != nil {
			return nil, err
		}
		seen[l] = true
	}

	levels := make([]domain.RiskLevel, 0, len(seen))
	for _, l := range domain.RiskLevels {
		if seen[l] {
			levels = append(levels, l)
		}
	}
	return levels, nil
}
