package analysis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
)

// RegionWarmer строит и кладёт в кеш наборы данных региона
type RegionWarmer interface {
	WarmRegion(ctx context.Context, regionID string) error
}

// CacheWarmWorker прогревает кеш наборов данных по событиям stream:analysis:created
type CacheWarmWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	warmer        RegionWarmer
	consumerGroup string
	consumerName  string
}

// NewCacheWarmWorker создает новый CacheWarmWorker
func NewCacheWarmWorker(
	streamRepo repository.StreamRepository,
	warmer RegionWarmer,
	consumerGroup string,
	logger *zap.Logger,
) *CacheWarmWorker {
	hostname, _ := os.Hostname()

	return &CacheWarmWorker{
		BaseWorker:    worker.NewBaseWorker("analysis-cache-warm", logger),
		streamRepo:    streamRepo,
		warmer:        warmer,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}
}

// Start запускает цикл чтения стрима
func (w *CacheWarmWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting cache warm worker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAnalysisCreated, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorSleep)
			continue
		}

		if processed == 0 {
			w.Sleep(ctx, emptyQueueSleep)
		}
	}
}

// processBatch читает пачку событий, прогревает уникальные регионы и подтверждает сообщения.
// Возвращает число прочитанных сообщений.
func (w *CacheWarmWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAnalysisCreated,
		w.consumerGroup,
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	messageIDs := make([]string, 0, len(messages))
	regions := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение не должно застревать в pending
			_ = w.streamRepo.AckMessage(ctx, domain.StreamAnalysisCreated, w.consumerGroup, msg.ID)
			continue
		}

		messageIDs = append(messageIDs, msg.ID)
		if _, ok := seen[event.Analysis.Region]; !ok {
			seen[event.Analysis.Region] = struct{}{}
			regions = append(regions, event.Analysis.Region)
		}
	}

	warmed := 0
	for _, regionID := range regions {
		if err := w.warmer.WarmRegion(ctx, regionID); err != nil {
			// неизвестный регион не появится при повторе, поэтому сообщение всё равно подтверждается
			logger.Warn("Failed to warm region datasets",
				zap.String("region_id", regionID),
				zap.Error(err))
			continue
		}
		warmed++
	}

	if len(messageIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamAnalysisCreated, w.consumerGroup, messageIDs); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("regions", len(regions)),
		zap.Int("warmed", warmed))

	return len(messages), nil
}

func parseMessage(msg domain.StreamMessage) (*domain.AnalysisCreatedEvent, error) {
	var event domain.AnalysisCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !event.Valid() {
		return nil, fmt.Errorf("event is missing session_id or analysis")
	}
	return &event, nil
}
