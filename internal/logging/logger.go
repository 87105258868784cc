// Package logging configures the zerolog logger used by go-readme and carries
// it through a context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to output (trace, debug, info, warn, error).
	Level string

	// Format is either "console" or "json".
	Format string

	// Output receives the log lines. Defaults to os.Stderr.
	Output io.Writer

	// NoColor disables color in console output.
	NoColor bool
}

// DefaultConfig logs warnings and errors to stderr in console format, so a
// successful run stays silent.
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// NewLoggerFromConfig creates a logger from cfg. A nil cfg uses DefaultConfig.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.ToLower(cfg.Format) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	level := parseLevel(cfg.Level)
	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
