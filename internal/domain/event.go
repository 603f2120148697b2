package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicTransferCompleted is the default topic for TransferCompleted events
const TopicTransferCompleted = "transfer_completed"

// TransferCompleted is emitted after money moved between two accounts
type TransferCompleted struct {
	ID          uuid.UUID       `json:"id"`
	Bank        string          `json:"bank"`
	FromOwner   string          `json:"from_owner"`
	ToOwner     string          `json:"to_owner"`
	Amount      decimal.Decimal `json:"amount"`
	FromBalance decimal.Decimal `json:"from_balance"`
	ToBalance   decimal.Decimal `json:"to_balance"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// EventPublisher delivers domain events to whoever listens
type EventPublisher interface {
	// Publish sends event on topic; key groups related events (e.g. per bank)
	Publish(ctx context.Context, topic, key string, event any) error
}
