package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junitapp/banco-backend/internal/domain"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := NewLogPublisher(logger)

	event := domain.TransferCompleted{
		ID:          uuid.New(),
		Bank:        "Banco del Estado",
		FromOwner:   "Andres",
		ToOwner:     "Jhon Doe",
		Amount:      decimal.NewFromInt(500),
		FromBalance: decimal.RequireFromString("1000.8989"),
		ToBalance:   decimal.NewFromInt(3000),
		OccurredAt:  time.Now().UTC(),
	}

	err := publisher.Publish(context.Background(), domain.TopicTransferCompleted, "Banco del Estado", event)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "event published", record["msg"])
	assert.Equal(t, domain.TopicTransferCompleted, record["topic"])
	assert.Equal(t, "Banco del Estado", record["key"])

	logged, ok := record["event"].(map[string]any)
	require.True(t, ok, "event should be logged as an object")
	assert.Equal(t, "Andres", logged["from_owner"])
	assert.Equal(t, "1000.8989", logged["from_balance"])
}

func TestNewLogPublisher_NilLogger(t *testing.T) {
	publisher := NewLogPublisher(nil)

	assert.NotNil(t, publisher.logger)
}
