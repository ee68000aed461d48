package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/pkg/utils"
	"github.com/landslide-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// DatasetHandler обрабатывает запросы наборов данных аналитики
type DatasetHandler struct {
	datasetUC *usecase.DatasetUseCase
	logger    *zap.Logger
}

// NewDatasetHandler создает новый экземпляр DatasetHandler
func NewDatasetHandler(datasetUC *usecase.DatasetUseCase, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasetUC: datasetUC,
		logger:    logger,
	}
}

// FactorDataset godoc
// @Summary Risk factor dataset
// @Description Набор факторов риска в порядке Rainfall, Slope, Vegetation, Geology
// @Tags Analytics
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.CategorySeries}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/datasets/factors [get]
func (h *DatasetHandler) FactorDataset(c *fiber.Ctx) error {
	start := time.Now()

	ds, source, err := h.datasetUC.FactorDataset(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ds, &utils.Meta{
		Total:    len(ds.Values),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
		Cached:   source != observability.CacheMiss,
	})
}

// HistoricalDataset godoc
// @Summary Historical risk dataset
// @Description Ряд истории оценок: i-я оценка соответствует i-му месяцу
// @Tags Analytics
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.TimeSeries}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/datasets/historical [get]
func (h *DatasetHandler) HistoricalDataset(c *fiber.Ctx) error {
	start := time.Now()

	ds, source, err := h.datasetUC.HistoricalDataset(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ds, &utils.Meta{
		Total:    len(ds.Values),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
		Cached:   source != observability.CacheMiss,
	})
}

// Summary godoc
// @Summary Region summary
// @Description Текущая оценка, число зон высокого риска и тренд истории
// @Tags Analytics
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.RegionSummary}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/summary [get]
func (h *DatasetHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.datasetUC.Summary(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, summary, nil)
}
