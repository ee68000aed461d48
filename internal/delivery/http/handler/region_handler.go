package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/landslide-dashboard/internal/pkg/utils"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// RegionHandler обрабатывает запросы каталога регионов и слоя карты
type RegionHandler struct {
	regionUC *usecase.RegionUseCase
	logger   *zap.Logger
}

// NewRegionHandler создает новый экземпляр RegionHandler
func NewRegionHandler(regionUC *usecase.RegionUseCase, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		regionUC: regionUC,
		logger:   logger,
	}
}

// ListRegions godoc
// @Summary List regions
// @Description Регионы каталога в каноническом порядке для списка выбора
// @Tags Regions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionListResponse}
// @Router /api/v1/regions [get]
func (h *RegionHandler) ListRegions(c *fiber.Ctx) error {
	resp := h.regionUC.ListRegions()
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetRegion godoc
// @Summary Get region
// @Description Регион с зонами риска, раскрашенными по уровню
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id} [get]
func (h *RegionHandler) GetRegion(c *fiber.Ctx) error {
	resp, err := h.regionUC.GetRegion(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// OverallBounds godoc
// @Summary Overall bounds
// @Description Бокс, охватывающий все регионы (начальный вид карты)
// @Tags Regions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.BoundsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/bounds [get]
func (h *RegionHandler) OverallBounds(c *fiber.Ctx) error {
	resp, err := h.regionUC.OverallBounds()
	if err != nil {
		h.logger.Error("Failed to compute overall bounds", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// FocusBounds godoc
// @Summary Region focus bounds
// @Description Бокс зон риска региона и параметры анимации перелёта
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.FocusResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/focus [get]
func (h *RegionHandler) FocusBounds(c *fiber.Ctx) error {
	resp, err := h.regionUC.FocusBounds(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Overlay godoc
// @Summary Risk overlay
// @Description Зоны всех регионов со стилями; зоны выбранного региона выделены
// @Tags Map
// @Produce json
// @Param selected query string false "Selected region ID"
// @Param risk query string false "Visible risk levels, comma separated (high,medium,low)"
// @Success 200 {object} utils.SuccessResponse{data=dto.OverlayResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/overlay [get]
func (h *RegionHandler) Overlay(c *fiber.Ctx) error {
	var req dto.OverlayRequest
	req.Selected = c.Query("selected")
	req.Risk = c.Query("risk")

	resp, err := h.regionUC.Overlay(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Zones)})
}

// RiskLevels godoc
// @Summary Risk level legend
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.RiskLevelLegend}
// @Router /api/v1/risk-levels [get]
func (h *RegionHandler) RiskLevels(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.regionUC.RiskLevels(), nil)
}

// Hotspots godoc
// @Summary Globe hotspots
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Hotspot}
// @Router /api/v1/hotspots [get]
func (h *RegionHandler) Hotspots(c *fiber.Ctx) error {
	hotspots := h.regionUC.Hotspots()
	return utils.SendSuccess(c, hotspots, &utils.Meta{Total: len(hotspots)})
}
