package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/landslide-dashboard/internal/pkg/errors"
	"github.com/landslide-dashboard/internal/pkg/utils"
	"github.com/landslide-dashboard/internal/pkg/validator"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionHandler обрабатывает запросы состояния сессии дашборда
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler создает новый экземпляр SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// CreateSession godoc
// @Summary Create dashboard session
// @Description Новая сессия: вкладка карты, регион по умолчанию, начальный анализ
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	resp, err := h.sessionUC.CreateSession(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// GetSession godoc
// @Summary Get session snapshot
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.GetSession(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SelectView godoc
// @Summary Select active view
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectViewRequest true "View (map, analytics, settings)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/view [put]
func (h *SessionHandler) SelectView(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectViewRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.SelectView(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SelectRegion godoc
// @Summary Select region
// @Description Меняет регион и возвращает пересчитанные фокус и наборы данных
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectRegionRequest true "Region"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/region [put]
func (h *SessionHandler) SelectRegion(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectRegionRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.SelectRegion(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SetLegend godoc
// @Summary Set or toggle legend visibility
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.LegendRequest false "Visibility; omit to toggle"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/legend [put]
func (h *SessionHandler) SetLegend(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.LegendRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	resp, err := h.sessionUC.SetLegend(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SetRiskFilter godoc
// @Summary Set visible risk levels
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.RiskFilterRequest true "Levels"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filter [put]
func (h *SessionHandler) SetRiskFilter(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RiskFilterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.SetRiskFilter(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// SetBaseLayer godoc
// @Summary Set map base layer
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.BaseLayerRequest true "Layer (street, satellite, terrain)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/layer [put]
func (h *SessionHandler) SetBaseLayer(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BaseLayerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.SetBaseLayer(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// GenerateAnalysis godoc
// @Summary Generate analysis
// @Description Создает анализ выбранного региона на сегодняшнюю дату
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} utils.SuccessResponse{data=dto.AnalysisResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/analyses [post]
func (h *SessionHandler) GenerateAnalysis(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.GenerateAnalysis(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// ListAnalyses godoc
// @Summary List analyses
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.AnalysesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/analyses [get]
func (h *SessionHandler) ListAnalyses(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.ListAnalyses(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// DeleteSession godoc
// @Summary End session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.sessionUC.DeleteSession(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		})
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		})
	}
	return validator.ValidateRequest(req)
}
