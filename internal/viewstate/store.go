package viewstate

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
)

// Store хранит сессии в памяти процесса. Сессии независимы друг от друга.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Controller
	catalog  *catalog.Catalog
	datasets *chart.Memo
	clock    func() time.Time
}

func NewStore(c *catalog.Catalog, datasets *chart.Memo, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Controller),
		catalog:  c,
		datasets: datasets,
		clock:    clock,
	}
}

// Create открывает новую сессию
func (s *Store) Create() (uuid.UUID, *Controller) {
	id := uuid.New()
	ctrl := NewController(s.catalog, s.datasets, s.clock)

	s.mu.Lock()
	s.sessions[id] = ctrl
	s.mu.Unlock()

	return id, ctrl
}

func (s *Store) Get(id uuid.UUID) (*Controller, error) {
	s.mu.RLock()
	ctrl, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return ctrl, nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// Catalog - каталог, общий для всех сессий
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep удаляет сессии, к которым не обращались дольше ttl, и возвращает их число
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.clock().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, ctrl := range s.sessions {
		if ctrl.LastAccess().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
