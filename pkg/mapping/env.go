package mapping

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds settings read from the environment.
type EnvConfig struct {
	MappingsFile string        `env:"CTLMAP_MAPPINGS"`
	LogLevel     string        `env:"CTLMAP_LOG_LEVEL"     envDefault:"info"`
	TraceFile    string        `env:"CTLMAP_TRACE_FILE"`
	StateFile    string        `env:"CTLMAP_STATE_FILE"`
	PollInterval time.Duration `env:"CTLMAP_POLL_INTERVAL" envDefault:"10ms"`
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return EnvConfig{}, fmt.Errorf("parse env: CTLMAP_POLL_INTERVAL must be positive, got %v", cfg.PollInterval)
	}
	return cfg, nil
}

// Level returns the slog level for LogLevel.
func (c EnvConfig) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("CTLMAP_LOG_LEVEL: %w", err)
	}
	return l, nil
}
