package usecase

import (
	"context"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"github.com/landslide-dashboard/internal/render"
	"go.uber.org/zap"
)

// RenderUseCase отдаёт SVG-превью карты и графиков региона
type RenderUseCase struct {
	catalog   *catalog.Catalog
	datasetUC *DatasetUseCase
	viewport  render.Viewport
	logger    *zap.Logger
}

// NewRenderUseCase создает новый экземпляр RenderUseCase
func NewRenderUseCase(c *catalog.Catalog, datasetUC *DatasetUseCase, logger *zap.Logger) *RenderUseCase {
	return &RenderUseCase{
		catalog:   c,
		datasetUC: datasetUC,
		viewport:  render.DefaultViewport,
		logger:    logger,
	}
}

// RegionOverlaySVG рисует зоны региона в рамке его фокуса, как после выбора региона
func (uc *RenderUseCase) RegionOverlaySVG(regionID, risk string) ([]byte, error) {
	region, err := uc.catalog.Get(regionID)
	if err != nil {
		return nil, err
	}

	levels, err := ParseRiskLevels(risk)
	if err != nil {
		return nil, err
	}

	frame, err := geo.FocusBounds(&region)
	if err != nil {
		return nil, err
	}

	zones := make([]render.Zone, 0, len(region.RiskZones))
	for _, oz := range OverlayZones([]domain.Region{region}, region.ID, levels) {
		zones = append(zones, render.Zone{Bounds: oz.Bounds, Risk: oz.Risk, Style: oz.Style})
	}

	return render.Overlay(render.OverlayOptions{
		Title:    region.Name,
		Frame:    frame,
		Zones:    zones,
		Legend:   true,
		Viewport: uc.viewport,
	}), nil
}

// FactorChartSVG - столбчатая диаграмма факторов риска
func (uc *RenderUseCase) FactorChartSVG(ctx context.Context, regionID string) ([]byte, error) {
	ds, _, err := uc.datasetUC.FactorDataset(ctx, regionID)
	if err != nil {
		return nil, err
	}
	return render.BarChart(ds, uc.viewport), nil
}

// HistoricalChartSVG - линейный график истории оценок
func (uc *RenderUseCase) HistoricalChartSVG(ctx context.Context, regionID string) ([]byte, error) {
	ds, _, err := uc.datasetUC.HistoricalDataset(ctx, regionID)
	if err != nil {
		return nil, err
	}
	return render.LineChart(ds, uc.viewport), nil
}
