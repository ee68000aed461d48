package worker

import (
	"context"
)

// Worker - фоновая задача процесса, управляемая WorkerManager
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться; повторный вызов безопасен
	Stop() error

	Name() string
}
