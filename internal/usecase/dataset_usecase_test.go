package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/observability"
	"github.com/landslide-dashboard/internal/repository/cache"
	"github.com/landslide-dashboard/internal/repository/static"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/viewstate"
)

func newMetrics(t *testing.T) *observability.Collector {
	t.Helper()
	m, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestDatasetUseCase_FactorDataset(t *testing.T) {
	ctx := context.Background()
	ttl := time.Hour

	t.Run("miss builds and caches, then memo", func(t *testing.T) {
		cache := &MockCacheRepository{}
		metrics := newMetrics(t)
		c := newCatalog(t)
		uc := usecase.NewDatasetUseCase(c, chart.NewMemo(), cache, ttl, metrics, zap.NewNop())

		key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetFactors, "coonoor")
		cache.On("Get", ctx, key).Return(nil, nil).Once()
		cache.On("Set", ctx, key, mock.AnythingOfType("[]uint8"), ttl).Return(nil).Once()

		ds, source, err := uc.FactorDataset(ctx, "coonoor")
		require.NoError(t, err)
		assert.Equal(t, observability.CacheMiss, source)
		assert.Equal(t, []int{80, 70, 60, 75}, ds.Values)

		ds2, source, err := uc.FactorDataset(ctx, "coonoor")
		require.NoError(t, err)
		assert.Equal(t, observability.CacheHitMemo, source)
		assert.Equal(t, ds, ds2)

		cache.AssertExpectations(t)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatasetCacheLookup.WithLabelValues("factors", "miss")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatasetCacheLookup.WithLabelValues("factors", "memo")))
	})

	t.Run("external cache hit", func(t *testing.T) {
		cache := &MockCacheRepository{}
		c := newCatalog(t)
		memo := chart.NewMemo()
		uc := usecase.NewDatasetUseCase(c, memo, cache, ttl, nil, zap.NewNop())

		ooty := c.MustGet("ooty")
		cached, err := chart.BuildFactorDataset(&ooty)
		require.NoError(t, err)
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetFactors, "ooty")
		cache.On("Get", ctx, key).Return(data, nil).Once()

		ds, source, err := uc.FactorDataset(ctx, "ooty")
		require.NoError(t, err)
		assert.Equal(t, observability.CacheHitStore, source)
		assert.Equal(t, cached, ds)
		cache.AssertExpectations(t)

		_, inMemo := memo.PeekFactors("ooty")
		assert.False(t, inMemo, "externally cached values must stay out of the shared memo")
	})

	t.Run("mismatched cached dataset is rebuilt", func(t *testing.T) {
		cache := &MockCacheRepository{}
		c := newCatalog(t)
		uc := usecase.NewDatasetUseCase(c, chart.NewMemo(), cache, ttl, nil, zap.NewNop())

		stale := domain.CategorySeries{Label: "Risk Factors", Labels: []string{"Rainfall"}, Values: []int{1}}
		data, err := json.Marshal(stale)
		require.NoError(t, err)

		key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetFactors, "ooty")
		cache.On("Get", ctx, key).Return(data, nil).Once()
		cache.On("Set", ctx, key, mock.AnythingOfType("[]uint8"), ttl).Return(nil).Once()

		ds, source, err := uc.FactorDataset(ctx, "ooty")
		require.NoError(t, err)
		assert.Equal(t, observability.CacheMiss, source)
		assert.Equal(t, []int{85, 80, 70, 80}, ds.Values)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall back to building", func(t *testing.T) {
		cache := &MockCacheRepository{}
		c := newCatalog(t)
		uc := usecase.NewDatasetUseCase(c, chart.NewMemo(), cache, ttl, nil, zap.NewNop())

		key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetFactors, "kodaikanal")
		cache.On("Get", ctx, key).Return(nil, errors.New("connection refused"))
		cache.On("Set", ctx, key, mock.Anything, ttl).Return(errors.New("connection refused"))

		ds, source, err := uc.FactorDataset(ctx, "kodaikanal")
		require.NoError(t, err)
		assert.Equal(t, observability.CacheMiss, source)
		assert.Equal(t, []int{70, 65, 75, 65}, ds.Values)
	})

	t.Run("unknown region", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc := usecase.NewDatasetUseCase(newCatalog(t), chart.NewMemo(), cache, ttl, nil, zap.NewNop())

		_, _, err := uc.FactorDataset(ctx, "atlantis")
		assert.ErrorIs(t, err, domain.ErrRegionNotFound)
		cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestDatasetUseCase_HistoricalDataset_Coonoor(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetHistorical, "coonoor")
	cache := &MockCacheRepository{}
	cache.On("Get", ctx, key).Return(nil, nil)
	cache.On("Set", ctx, key, mock.Anything, time.Minute).Return(nil)

	uc := usecase.NewDatasetUseCase(c, chart.NewMemo(), cache, time.Minute, nil, zap.NewNop())

	ds, _, err := uc.HistoricalDataset(ctx, "coonoor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May"}, ds.Labels)
	assert.Equal(t, []int{65, 70, 72, 68, 75}, ds.Values)
	cache.AssertExpectations(t)
}

func TestDatasetUseCase_Summary(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}
	cache.On("Get", ctx, mock.Anything).Return(nil, nil)
	cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewDatasetUseCase(newCatalog(t), chart.NewMemo(), cache, time.Hour, nil, zap.NewNop())

	s, err := uc.Summary(ctx, "coonoor")
	require.NoError(t, err)
	assert.Equal(t, "coonoor", s.RegionID)
	assert.Equal(t, 75, s.CurrentScore)
	assert.Equal(t, 1, s.HighRiskAreas)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1, "low": 1}, s.ZonesByRisk)
	assert.Equal(t, domain.TrendRising, s.Trend.Direction)
	assert.InDelta(t, 70.0, s.Trend.Mean, 0.01)
	assert.Greater(t, s.FocusAreaSqKm, 0.0)

	_, err = uc.Summary(ctx, "atlantis")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestDatasetUseCase_WarmRegion(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	factorsKey := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetFactors, "ooty")
	historicalKey := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetHistorical, "ooty")

	cache := &MockCacheRepository{}
	cache.On("Exists", ctx, factorsKey).Return(false, nil).Once()
	cache.On("Exists", ctx, historicalKey).Return(false, nil).Once()
	cache.On("Set", ctx, factorsKey, mock.Anything, time.Hour).Return(nil).Once()
	cache.On("Set", ctx, historicalKey, mock.Anything, time.Hour).Return(nil).Once()

	uc := usecase.NewDatasetUseCase(c, chart.NewMemo(), cache, time.Hour, nil, zap.NewNop())

	require.NoError(t, uc.WarmRegion(ctx, "ooty"))
	cache.AssertExpectations(t)

	// второй прогрев при живом кеше ничего не пишет
	cache.On("Exists", ctx, factorsKey).Return(true, nil).Once()
	cache.On("Exists", ctx, historicalKey).Return(true, nil).Once()
	require.NoError(t, uc.WarmRegion(ctx, "ooty"))
	cache.AssertNumberOfCalls(t, "Set", 2)

	assert.ErrorIs(t, uc.WarmRegion(ctx, "atlantis"), domain.ErrRegionNotFound)
}

func TestDatasetUseCase_MismatchedCacheDoesNotReachSessions(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	memo := chart.NewMemo()
	cacheRepo := cache.NewMemoryCacheRepository()

	key := usecase.DatasetCacheKey(c.Fingerprint(), usecase.DatasetHistorical, "coonoor")
	require.NoError(t, cacheRepo.Set(ctx, key, []byte(`{"labels":["Jan"],"values":[1]}`), time.Hour))

	uc := usecase.NewDatasetUseCase(c, memo, cacheRepo, time.Hour, nil, zap.NewNop())

	ds, source, err := uc.HistoricalDataset(ctx, "coonoor")
	require.NoError(t, err)
	assert.Equal(t, observability.CacheMiss, source)
	assert.Equal(t, []int{65, 70, 72, 68, 75}, ds.Values)

	// устаревшая запись перезаписана построенным рядом
	data, err := cacheRepo.Get(ctx, key)
	require.NoError(t, err)
	var stored domain.TimeSeries
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, []int{65, 70, 72, 68, 75}, stored.Values)

	_, ctrl := viewstate.NewStore(c, memo, nil).Create()
	snap, err := ctrl.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "coonoor", snap.Cascade.RegionID)
	assert.Equal(t, []int{65, 70, 72, 68, 75}, snap.Cascade.Historical.Values)
}

func TestDatasetCacheKey_CarriesCatalogVersion(t *testing.T) {
	regions := static.Regions()
	before, err := catalog.New(regions, "coonoor")
	require.NoError(t, err)

	regions[0].RiskScores.Historical[4] = 90
	after, err := catalog.New(regions, "coonoor")
	require.NoError(t, err)

	assert.NotEqual(t,
		usecase.DatasetCacheKey(before.Fingerprint(), usecase.DatasetHistorical, "coonoor"),
		usecase.DatasetCacheKey(after.Fingerprint(), usecase.DatasetHistorical, "coonoor"))
}
