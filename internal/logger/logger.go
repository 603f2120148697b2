package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/junitapp/banco-backend/internal/config"
)

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

// New builds the process logger on stdout and installs it as slog's default
func New(cfg config.Log) *slog.Logger {
	logger := NewWithWriter(os.Stdout, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds a slog.Logger backed by a charmbracelet/log handler.
// Unknown formats fall back to text, unknown levels to info.
func NewWithWriter(w io.Writer, cfg config.Log) *slog.Logger {
	formatter := log.TextFormatter
	if f, ok := formatters[strings.ToLower(cfg.Format)]; ok {
		formatter = f
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	return slog.New(handler)
}
