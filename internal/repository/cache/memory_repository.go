package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryRepository - кеш в памяти процесса для запуска без Redis (REDIS_ENABLED=false)
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCacheRepository() repository.CacheRepository {
	return newMemoryCacheRepository(time.Now)
}

func newMemoryCacheRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (r *memoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok || r.expired(e) {
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

func (r *memoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = e
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	v, err := r.Get(ctx, key)
	return v != nil, err
}

func (r *memoryRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	return decodeStats(data)
}

func (r *memoryRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return r.Set(ctx, statsKey, data, ttl)
}

func (r *memoryRepository) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)
}
