package events

import (
	"context"
	"log/slog"

	"github.com/junitapp/banco-backend/internal/domain"
)

// LogPublisher implements domain.EventPublisher by writing each event to a logger.
// Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that logs events at INFO level
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs the event; it never fails
func (p *LogPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	p.logger.InfoContext(ctx, "event published",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.Any("event", event),
	)
	return nil
}

var _ domain.EventPublisher = (*LogPublisher)(nil)
