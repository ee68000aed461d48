package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/landslide-dashboard/internal/pkg/utils"
	"github.com/landslide-dashboard/internal/usecase"
	"go.uber.org/zap"
)

const contentTypeSVG = "image/svg+xml"

// RenderHandler отдаёт SVG-превью
type RenderHandler struct {
	renderUC *usecase.RenderUseCase
	logger   *zap.Logger
}

// NewRenderHandler создает новый экземпляр RenderHandler
func NewRenderHandler(renderUC *usecase.RenderUseCase, logger *zap.Logger) *RenderHandler {
	return &RenderHandler{
		renderUC: renderUC,
		logger:   logger,
	}
}

// RegionOverlay godoc
// @Summary Region overlay preview
// @Tags Render
// @Produce image/svg+xml
// @Param id path string true "Region ID"
// @Param risk query string false "Visible risk levels, comma separated"
// @Success 200 {string} string "SVG"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/overlay.svg [get]
func (h *RenderHandler) RegionOverlay(c *fiber.Ctx) error {
	out, err := h.renderUC.RegionOverlaySVG(c.Params("id"), c.Query("risk"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendSVG(c, out)
}

// FactorChart godoc
// @Summary Risk factor bar chart
// @Tags Render
// @Produce image/svg+xml
// @Param id path string true "Region ID"
// @Success 200 {string} string "SVG"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/charts/factors.svg [get]
func (h *RenderHandler) FactorChart(c *fiber.Ctx) error {
	out, err := h.renderUC.FactorChartSVG(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendSVG(c, out)
}

// HistoricalChart godoc
// @Summary Historical risk line chart
// @Tags Render
// @Produce image/svg+xml
// @Param id path string true "Region ID"
// @Success 200 {string} string "SVG"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id}/charts/historical.svg [get]
func (h *RenderHandler) HistoricalChart(c *fiber.Ctx) error {
	out, err := h.renderUC.HistoricalChartSVG(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendSVG(c, out)
}

func sendSVG(c *fiber.Ctx, out []byte) error {
	c.Set(fiber.HeaderContentType, contentTypeSVG)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(out)
}
