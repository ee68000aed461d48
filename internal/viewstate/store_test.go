package viewstate

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStore_CreateGetDelete(t *testing.T) {
	s := NewStore(testCatalog(t), chart.NewMemo(), nil)

	id, ctrl := s.Create()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Same(t, ctrl, got)

	require.NoError(t, s.Delete(id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, s.Delete(id), domain.ErrSessionNotFound)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	s := NewStore(testCatalog(t), chart.NewMemo(), nil)

	_, a := s.Create()
	_, b := s.Create()

	_, err := a.SelectRegion("ooty")
	require.NoError(t, err)
	analysis, _, err := a.GenerateNewAnalysis()
	require.NoError(t, err)
	assert.Equal(t, "2", analysis.ID)

	assert.Equal(t, "coonoor", b.State().SelectedRegion)
	analysis, _, err = b.GenerateNewAnalysis()
	require.NoError(t, err)
	assert.Equal(t, "2", analysis.ID, "each session owns its counter")
}

func TestStore_Sweep(t *testing.T) {
	clock := &testClock{now: time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC)}
	s := NewStore(testCatalog(t), chart.NewMemo(), clock.Now)

	idle, _ := s.Create()
	active, activeCtrl := s.Create()

	clock.Advance(90 * time.Minute)
	_ = activeCtrl.State()
	clock.Advance(45 * time.Minute)

	evicted := s.Sweep(2 * time.Hour)
	assert.Equal(t, 1, evicted)

	_, err := s.Get(idle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Get(active)
	assert.NoError(t, err)
}
