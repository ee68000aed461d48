package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/usecase/dto"
	"github.com/landslide-dashboard/internal/viewstate"
)

var analysisDay = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newSessionUseCase(t *testing.T, stream *MockStreamRepository) (*usecase.SessionUseCase, *viewstate.Store) {
	t.Helper()
	store := viewstate.NewStore(newCatalog(t), chart.NewMemo(), func() time.Time { return analysisDay })
	if stream == nil {
		// typed nil would make the interface non-nil
		return usecase.NewSessionUseCase(store, nil, nil, zap.NewNop()), store
	}
	return usecase.NewSessionUseCase(store, stream, nil, zap.NewNop()), store
}

func TestSessionUseCase_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	uc, store := newSessionUseCase(t, nil)

	created, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.SessionID)
	assert.Equal(t, "coonoor", created.State.SelectedRegion)
	assert.Equal(t, domain.ViewMap, created.State.ActiveView)
	assert.Equal(t, "coonoor", created.Cascade.RegionID)
	assert.Equal(t, domain.LayerStreet.TileURL(), created.TileURL)
	assert.Equal(t, 1, store.Len())

	got, err := uc.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.State, got.State)

	_, err = uc.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionUseCase_SelectRegionCascade(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionUseCase(t, nil)

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := uc.SelectRegion(ctx, s.SessionID, dto.SelectRegionRequest{RegionID: "ooty"})
	require.NoError(t, err)
	assert.Equal(t, "ooty", resp.State.SelectedRegion)
	assert.Equal(t, []int{70, 75, 78, 80, 82}, resp.Cascade.Historical.Values)
	assert.Equal(t, []int{85, 80, 70, 80}, resp.Cascade.Factors.Values)

	_, err = uc.SelectRegion(ctx, s.SessionID, dto.SelectRegionRequest{RegionID: "atlantis"})
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	after, err := uc.GetSession(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "ooty", after.State.SelectedRegion)
}

func TestSessionUseCase_ViewLegendFilterLayer(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionUseCase(t, nil)

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	id := s.SessionID

	resp, err := uc.SelectView(ctx, id, dto.SelectViewRequest{View: "Analytics"})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewAnalytics, resp.State.ActiveView)

	_, err = uc.SelectView(ctx, id, dto.SelectViewRequest{View: "reports"})
	assert.ErrorIs(t, err, domain.ErrInvalidView)

	resp, err = uc.SetLegend(ctx, id, dto.LegendRequest{})
	require.NoError(t, err)
	assert.False(t, resp.State.LegendVisible)

	visible := true
	resp, err = uc.SetLegend(ctx, id, dto.LegendRequest{Visible: &visible})
	require.NoError(t, err)
	assert.True(t, resp.State.LegendVisible)

	resp, err = uc.SetRiskFilter(ctx, id, dto.RiskFilterRequest{Levels: []string{"medium"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.RiskLevel{domain.RiskMedium}, resp.State.RiskFilter)

	_, err = uc.SetRiskFilter(ctx, id, dto.RiskFilterRequest{Levels: []string{"severe"}})
	assert.ErrorIs(t, err, domain.ErrInvalidRiskLevel)

	resp, err = uc.SetBaseLayer(ctx, id, dto.BaseLayerRequest{Layer: "satellite"})
	require.NoError(t, err)
	assert.Equal(t, domain.LayerSatellite, resp.State.BaseLayer)
	assert.Equal(t, domain.LayerSatellite.TileURL(), resp.TileURL)

	_, err = uc.SetBaseLayer(ctx, id, dto.BaseLayerRequest{Layer: "hybrid"})
	assert.ErrorIs(t, err, domain.ErrInvalidBaseLayer)
}

func TestSessionUseCase_OverlayFollowsRiskFilter(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionUseCase(t, nil)

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Overlay, 9)
	require.Len(t, s.Legend, 3)

	resp, err := uc.SetRiskFilter(ctx, s.SessionID, dto.RiskFilterRequest{Levels: []string{"high", "low"}})
	require.NoError(t, err)
	require.Len(t, resp.Overlay, 6)
	for _, z := range resp.Overlay {
		assert.NotEqual(t, domain.RiskMedium, z.Risk)
		// зоны выбранного региона выделены
		assert.Equal(t, domain.StyleForZone(z.Risk, z.RegionID == "coonoor"), z.Style)
	}

	visible := map[domain.RiskLevel]bool{}
	for _, l := range resp.Legend {
		visible[l.Level] = l.Visible
	}
	assert.Equal(t, map[domain.RiskLevel]bool{
		domain.RiskHigh:   true,
		domain.RiskMedium: false,
		domain.RiskLow:    true,
	}, visible)

	hide := false
	resp, err = uc.SetLegend(ctx, s.SessionID, dto.LegendRequest{Visible: &hide})
	require.NoError(t, err)
	assert.Nil(t, resp.Legend)
	assert.Len(t, resp.Overlay, 6)
}

func TestSessionUseCase_GenerateAnalysis(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	uc, _ := newSessionUseCase(t, stream)

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = uc.SelectRegion(ctx, s.SessionID, dto.SelectRegionRequest{RegionID: "ooty"})
	require.NoError(t, err)

	want := domain.AnalysisCreatedEvent{
		SessionID: s.SessionID,
		Analysis:  domain.Analysis{ID: "2", Date: "2024-03-01", Region: "ooty"},
	}
	stream.On("PublishToStream", ctx, domain.StreamAnalysisCreated, want).Return(nil).Once()

	resp, err := uc.GenerateAnalysis(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "2", resp.Analysis.ID)
	assert.Equal(t, "2024-03-01", resp.Analysis.Date)
	assert.Equal(t, "ooty", resp.Analysis.Region)
	assert.Equal(t, "Analysis 2 (2024-03-01)", resp.Analysis.Label)
	assert.Equal(t, 2, resp.Total)
	stream.AssertExpectations(t)

	list, err := uc.ListAnalyses(ctx, s.SessionID)
	require.NoError(t, err)
	require.Len(t, list.Analyses, 2)
	assert.Equal(t, "Analysis 1 (2024-02-15)", list.Analyses[0].Label)
}

func TestSessionUseCase_PublishFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	stream.On("PublishToStream", ctx, domain.StreamAnalysisCreated, mock.Anything).Return(errors.New("redis down"))

	uc, _ := newSessionUseCase(t, stream)
	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	resp, err := uc.GenerateAnalysis(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "coonoor", resp.Analysis.Region)
}

func TestSessionUseCase_DeleteAndSweep(t *testing.T) {
	ctx := context.Background()
	store := viewstate.NewStore(newCatalog(t), chart.NewMemo(), nil)
	metrics := newMetrics(t)
	uc := usecase.NewSessionUseCase(store, nil, metrics, zap.NewNop())

	a, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = uc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SessionsActive))

	require.NoError(t, uc.DeleteSession(ctx, a.SessionID))
	assert.ErrorIs(t, uc.DeleteSession(ctx, a.SessionID), domain.ErrSessionNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SessionsActive))

	assert.Equal(t, 0, uc.SweepIdle(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, uc.SweepIdle(time.Millisecond))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.SessionsActive))
}
