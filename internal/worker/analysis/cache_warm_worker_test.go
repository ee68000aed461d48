package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/landslide-dashboard/internal/domain"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type fakeWarmer struct {
	mu      sync.Mutex
	regions []string
	fail    map[string]error
}

func (f *fakeWarmer) WarmRegion(ctx context.Context, regionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regions = append(f.regions, regionID)
	return f.fail[regionID]
}

func (f *fakeWarmer) Warmed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.regions...)
}

const group = "analysis-cache-warmers"

func eventMessage(t *testing.T, id, regionID string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.AnalysisCreatedEvent{
		SessionID: uuid.New(),
		Analysis:  domain.Analysis{ID: "2", Date: "2024-03-01", Region: regionID},
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestCacheWarmWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	warmer := &fakeWarmer{}
	w := NewCacheWarmWorker(repo, warmer, group, zap.NewNop())

	messages := []domain.StreamMessage{
		eventMessage(t, "1-0", "ooty"),
		eventMessage(t, "2-0", "ooty"),
		eventMessage(t, "3-0", "kodaikanal"),
	}
	repo.On("ConsumeBatch", ctx, domain.StreamAnalysisCreated, group, mock.Anything, int64(maxBatchSize)).
		Return(messages, nil).Once()
	repo.On("AckMessages", ctx, domain.StreamAnalysisCreated, group, []string{"1-0", "2-0", "3-0"}).
		Return(nil).Once()

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"ooty", "kodaikanal"}, warmer.Warmed())
	repo.AssertExpectations(t)
}

func TestCacheWarmWorker_MalformedMessagesAreAcked(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	warmer := &fakeWarmer{}
	w := NewCacheWarmWorker(repo, warmer, group, zap.NewNop())

	messages := []domain.StreamMessage{
		{ID: "1-0", Data: "{not json"},
		{ID: "2-0", Data: `{"session_id":"00000000-0000-0000-0000-000000000000"}`},
		eventMessage(t, "3-0", "coonoor"),
	}
	repo.On("ConsumeBatch", ctx, domain.StreamAnalysisCreated, group, mock.Anything, int64(maxBatchSize)).
		Return(messages, nil).Once()
	repo.On("AckMessage", ctx, domain.StreamAnalysisCreated, group, "1-0").Return(nil).Once()
	repo.On("AckMessage", ctx, domain.StreamAnalysisCreated, group, "2-0").Return(nil).Once()
	repo.On("AckMessages", ctx, domain.StreamAnalysisCreated, group, []string{"3-0"}).Return(nil).Once()

	n, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"coonoor"}, warmer.Warmed())
	repo.AssertExpectations(t)
}

func TestCacheWarmWorker_WarmFailureStillAcks(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	warmer := &fakeWarmer{fail: map[string]error{"munnar": domain.ErrRegionNotFound}}
	w := NewCacheWarmWorker(repo, warmer, group, zap.NewNop())

	repo.On("ConsumeBatch", ctx, domain.StreamAnalysisCreated, group, mock.Anything, int64(maxBatchSize)).
		Return([]domain.StreamMessage{eventMessage(t, "1-0", "munnar")}, nil).Once()
	repo.On("AckMessages", ctx, domain.StreamAnalysisCreated, group, []string{"1-0"}).Return(nil).Once()

	_, err := w.processBatch(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCacheWarmWorker_ConsumeError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	w := NewCacheWarmWorker(repo, &fakeWarmer{}, group, zap.NewNop())

	repo.On("ConsumeBatch", ctx, domain.StreamAnalysisCreated, group, mock.Anything, int64(maxBatchSize)).
		Return(nil, errors.New("connection refused")).Once()

	n, err := w.processBatch(ctx)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestCacheWarmWorker_StartFailsWithoutGroup(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	w := NewCacheWarmWorker(repo, &fakeWarmer{}, group, zap.NewNop())

	repo.On("CreateConsumerGroup", ctx, domain.StreamAnalysisCreated, group).Return(errors.New("NOAUTH")).Once()

	assert.Error(t, w.Start(ctx))
}

func TestCacheWarmWorker_StartStop(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStreamRepository)
	w := NewCacheWarmWorker(repo, &fakeWarmer{}, group, zap.NewNop())

	repo.On("CreateConsumerGroup", ctx, domain.StreamAnalysisCreated, group).Return(nil).Once()
	repo.On("ConsumeBatch", ctx, domain.StreamAnalysisCreated, group, mock.Anything, int64(maxBatchSize)).
		Return([]domain.StreamMessage{}, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
