package session

import (
	"context"
	"time"

	"github.com/landslide-dashboard/internal/worker"
	"go.uber.org/zap"
)

// IdleSweeper удаляет сессии, неактивные дольше ttl, и возвращает их число
type IdleSweeper interface {
	SweepIdle(ttl time.Duration) int
}

// Janitor периодически удаляет простаивающие сессии
type Janitor struct {
	*worker.BaseWorker
	sweeper  IdleSweeper
	ttl      time.Duration
	interval time.Duration
}

func NewJanitor(sweeper IdleSweeper, ttl, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		BaseWorker: worker.NewBaseWorker("session-janitor", logger),
		sweeper:    sweeper,
		ttl:        ttl,
		interval:   interval,
	}
}

func (j *Janitor) Start(ctx context.Context) error {
	j.Logger().Info("Starting session janitor",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.StopChan():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := j.sweeper.SweepIdle(j.ttl); n > 0 {
				j.Logger().Info("Idle sessions removed", zap.Int("count", n))
			}
		}
	}
}
