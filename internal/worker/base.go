package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BaseWorker содержит общую логику остановки для всех воркеров
type BaseWorker struct {
	name     string
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:     name,
		logger:   logger.With(zap.String("worker", name)),
		stopChan: make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop останавливает воркер
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stopChan)
	})
	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// Sleep ждёт d, прерываясь на остановке воркера или отмене ctx.
// Возвращает false, если ожидание прервано.
func (w *BaseWorker) Sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-w.stopChan:
		return false
	case <-ctx.Done():
		return false
	}
}
