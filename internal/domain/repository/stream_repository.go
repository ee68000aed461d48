package repository

import (
	"context"

	"github.com/landslide-dashboard/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до count сообщений без длительной блокировки
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages подтверждает обработку пачки сообщений одним вызовом
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
