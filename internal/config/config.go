package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. BANCO_GRPC_ADDR
const Prefix = "BANCO"

// Log configures the process logger
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"banco"`
}

// Kafka configures the transfer event stream.
// With no brokers, events are written to the log instead.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS"`
	Topic   string   `envconfig:"TOPIC" default:"transfer_completed"`
}

// Seed configures the demo bank created on startup
type Seed struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	BankName string `envconfig:"BANK_NAME" default:"Banco del Estado"`
}

// Config is the process configuration
type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	GRPCAddr string `envconfig:"GRPC_ADDR" default:":8080"`
	Log      Log    `envconfig:"LOG"`
	Kafka    Kafka  `envconfig:"KAFKA"`
	Seed     Seed   `envconfig:"SEED"`
}

// Load reads the first env file found in envFiles (or .env when none is given)
// and then fills Config from the environment. Variables already set in the
// environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, path := range envFiles {
		err := godotenv.Load(path)
		if err == nil {
			logger.Debug("Loaded environment file", "path", path)
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load environment file %s: %w", path, err)
		}
		logger.Debug("Environment file not found", "path", path)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &cfg, nil
}
