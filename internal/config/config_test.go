package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the tests touch so the host environment cannot leak in.
// t.Setenv restores the previous values when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BANCO_ENV", "BANCO_GRPC_ADDR",
		"BANCO_LOG_LEVEL", "BANCO_LOG_FORMAT", "BANCO_LOG_TIME_FORMAT", "BANCO_LOG_PREFIX",
		"BANCO_KAFKA_BROKERS", "BANCO_KAFKA_TOPIC",
		"BANCO_SEED_ENABLED", "BANCO_SEED_BANK_NAME",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "transfer_completed", cfg.Kafka.Topic)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "Banco del Estado", cfg.Seed.BankName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_GRPC_ADDR", ":9090")
	t.Setenv("BANCO_LOG_FORMAT", "json")
	t.Setenv("BANCO_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("BANCO_SEED_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_LOG_LEVEL", "debug")

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "BANCO_SEED_BANK_NAME=Banco Central\nBANCO_LOG_LEVEL=error\nBANCO_KAFKA_TOPIC=transfers\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(filepath.Join(dir, "missing.env"), envFile)

	require.NoError(t, err)
	assert.Equal(t, "Banco Central", cfg.Seed.BankName)
	assert.Equal(t, "transfers", cfg.Kafka.Topic)
	// Already-set variables are not overridden by the file
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_SEED_ENABLED", "not-a-bool")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process environment")
}
