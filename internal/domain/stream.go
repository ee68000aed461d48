package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamAnalysisCreated = "stream:analysis:created"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// AnalysisCreatedEvent - событие создания анализа в сессии дашборда
type AnalysisCreatedEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	Analysis  Analysis  `json:"analysis"`
}

// Valid проверяет обязательные поля события
func (e *AnalysisCreatedEvent) Valid() bool {
	return e.SessionID != uuid.Nil && e.Analysis.ID != "" && e.Analysis.Region != ""
}
