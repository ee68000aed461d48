package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/usecase/dto"
	"github.com/landslide-dashboard/internal/viewstate"
	"go.uber.org/zap"
)

// SessionUseCase управляет сессиями дашборда и публикует события анализов
type SessionUseCase struct {
	store      *viewstate.Store
	streamRepo repository.StreamRepository
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewSessionUseCase создает новый экземпляр SessionUseCase.
// streamRepo может быть nil: тогда события анализов не публикуются.
func NewSessionUseCase(
	store *viewstate.Store,
	streamRepo repository.StreamRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		store:      store,
		streamRepo: streamRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateSession открывает сессию с начальным состоянием
func (uc *SessionUseCase) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	id, ctrl := uc.store.Create()
	uc.metrics.SetSessionsActive(uc.store.Len())

	snap, err := ctrl.Snapshot()
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Session created",
		zap.String("session_id", id.String()),
		zap.String("region", snap.State.SelectedRegion))

	return uc.sessionResponse(id, snap), nil
}

// GetSession возвращает снимок сессии
func (uc *SessionUseCase) GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	ctrl, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return uc.snapshot(id, ctrl)
}

// SelectView переключает вкладку
func (uc *SessionUseCase) SelectView(ctx context.Context, id uuid.UUID, req dto.SelectViewRequest) (*dto.SessionResponse, error) {
	view, err := domain.ParseView(req.View)
	if err != nil {
		return nil, err
	}
	return uc.dispatch(id, viewstate.SelectView{View: view})
}

// SelectRegion меняет регион и возвращает пересчитанный каскад
func (uc *SessionUseCase) SelectRegion(ctx context.Context, id uuid.UUID, req dto.SelectRegionRequest) (*dto.SessionResponse, error) {
	ctrl, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}

	snap, err := ctrl.SelectRegion(req.RegionID)
	if err != nil {
		uc.logger.Debug("Region selection rejected",
			zap.String("session_id", id.String()),
			zap.String("region", req.RegionID),
			zap.Error(err))
		return nil, err
	}

	return uc.sessionResponse(id, snap), nil
}

// SetLegend показывает/скрывает легенду; без значения - переключает
func (uc *SessionUseCase) SetLegend(ctx context.Context, id uuid.UUID, req dto.LegendRequest) (*dto.SessionResponse, error) {
	if req.Visible == nil {
		return uc.dispatch(id, viewstate.ToggleLegend{})
	}
	return uc.dispatch(id, viewstate.SetLegend{Visible: *req.Visible})
}

// SetRiskFilter задаёт видимые уровни риска
func (uc *SessionUseCase) SetRiskFilter(ctx context.Context, id uuid.UUID, req dto.RiskFilterRequest) (*dto.SessionResponse, error) {
	levels := make([]domain.RiskLevel, 0, len(req.Levels))
	for _, s := range req.Levels {
		l, err := domain.ParseRiskLevel(s)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return uc.dispatch(id, viewstate.SetRiskFilter{Levels: levels})
}

// SetBaseLayer переключает подложку карты
func (uc *SessionUseCase) SetBaseLayer(ctx context.Context, id uuid.UUID, req dto.BaseLayerRequest) (*dto.SessionResponse, error) {
	layer, err := domain.ParseBaseLayer(req.Layer)
	if err != nil {
		return nil, err
	}
	return uc.dispatch(id, viewstate.SetBaseLayer{Layer: layer})
}

// GenerateAnalysis создает анализ для выбранного региона и публикует событие.
// Ошибка публикации только логируется.
func (uc *SessionUseCase) GenerateAnalysis(ctx context.Context, id uuid.UUID) (*dto.AnalysisResponse, error) {
	ctrl, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}

	analysis, state, err := ctrl.GenerateNewAnalysis()
	if err != nil {
		return nil, err
	}
	uc.metrics.AnalysisGenerated(analysis.Region)

	uc.logger.Info("Analysis generated",
		zap.String("session_id", id.String()),
		zap.String("analysis_id", analysis.ID),
		zap.String("region", analysis.Region))

	if uc.streamRepo != nil {
		event := domain.AnalysisCreatedEvent{SessionID: id, Analysis: analysis}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAnalysisCreated, event); err != nil {
			uc.logger.Warn("Failed to publish analysis event",
				zap.String("session_id", id.String()),
				zap.String("analysis_id", analysis.ID),
				zap.Error(err))
		}
	}

	return &dto.AnalysisResponse{
		SessionID: id,
		Analysis:  dto.NewAnalysisItem(analysis),
		Total:     len(state.Analyses),
	}, nil
}

// ListAnalyses возвращает анализы сессии в порядке создания
func (uc *SessionUseCase) ListAnalyses(ctx context.Context, id uuid.UUID) (*dto.AnalysesResponse, error) {
	ctrl, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}

	state := ctrl.State()
	items := make([]dto.AnalysisItem, len(state.Analyses))
	for i, a := range state.Analyses {
		items[i] = dto.NewAnalysisItem(a)
	}

	return &dto.AnalysesResponse{
		SessionID: id,
		Analyses:  items,
		Total:     len(items),
	}, nil
}

// DeleteSession завершает сессию
func (uc *SessionUseCase) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.metrics.SetSessionsActive(uc.store.Len())
	uc.logger.Info("Session deleted", zap.String("session_id", id.String()))
	return nil
}

// SweepIdle удаляет сессии без обращений дольше ttl
func (uc *SessionUseCase) SweepIdle(ttl time.Duration) int {
	evicted := uc.store.Sweep(ttl)
	uc.metrics.SetSessionsActive(uc.store.Len())
	if evicted > 0 {
		uc.logger.Info("Idle sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("active", uc.store.Len()))
	}
	return evicted
}

func (uc *SessionUseCase) dispatch(id uuid.UUID, action viewstate.Action) (*dto.SessionResponse, error) {
	ctrl, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	if _, err := ctrl.Dispatch(action); err != nil {
		return nil, err
	}
	return uc.snapshot(id, ctrl)
}

func (uc *SessionUseCase) snapshot(id uuid.UUID, ctrl *viewstate.Controller) (*dto.SessionResponse, error) {
	snap, err := ctrl.Snapshot()
	if err != nil {
		uc.logger.Error("Failed to build session snapshot",
			zap.String("session_id", id.String()),
			zap.Error(err))
		return nil, err
	}
	return uc.sessionResponse(id, snap), nil
}

func (uc *SessionUseCase) sessionResponse(id uuid.UUID, snap viewstate.Snapshot) *dto.SessionResponse {
	state := snap.State
	resp := &dto.SessionResponse{
		SessionID: id,
		State:     state,
		Cascade:   snap.Cascade,
		TileURL:   state.BaseLayer.TileURL(),
		Overlay:   OverlayZones(uc.store.Catalog().Regions(), state.SelectedRegion, state.RiskFilter),
	}
	if state.LegendVisible {
		resp.Legend = sessionLegend(state)
	}
	return resp
}

func sessionLegend(state viewstate.State) []dto.LegendItem {
	levels := riskLegend()
	items := make([]dto.LegendItem, len(levels))
	for i, l := range levels {
		items[i] = dto.LegendItem{RiskLevelLegend: l, Visible: state.Shows(l.Level)}
	}
	return items
}
