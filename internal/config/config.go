// Package config loads server settings from ARENA_* environment variables.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/arena-api/internal/errors"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "ARENA_"

// Backend selects where gladiators, sessions and mailboxes live.
type Backend string

// Storage backends.
const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
	// BackendSQLite keeps gladiators in SQLite; sessions and mailboxes stay in memory.
	BackendSQLite Backend = "sqlite"
)

// Config holds every server setting. Flags on the server command override
// whatever the environment provided.
type Config struct {
	Port    int     `env:"PORT" envDefault:"50051"`
	Backend Backend `env:"BACKEND" envDefault:"memory"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"arena.db"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RoundCap   int           `env:"ROUND_CAP" envDefault:"50"`
	// Seed makes combat reproducible; zero uses the non-deterministic roller
	Seed               uint64 `env:"SEED" envDefault:"0"`
	StatPointsPerLevel int    `env:"STAT_POINTS_PER_LEVEL" envDefault:"1"`
	CreationPool       int    `env:"CREATION_POOL" envDefault:"150"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment.
// A nil map reads the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and backend-specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port < 1 || c.Port > 65535 {
		vb.InvalidField("Port", "must be between 1 and 65535")
	}

	switch c.Backend {
	case BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			vb.RequiredField("RedisAddr")
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			vb.RequiredField("SQLitePath")
		}
	default:
		vb.InvalidField("Backend", "must be one of memory, redis, sqlite")
	}

	if c.SessionTTL <= 0 {
		vb.InvalidField("SessionTTL", "must be positive")
	}
	if c.RoundCap < 1 {
		vb.InvalidField("RoundCap", "must be at least 1")
	}
	if c.StatPointsPerLevel < 0 {
		vb.InvalidField("StatPointsPerLevel", "must not be negative")
	}
	if c.CreationPool < 0 {
		vb.InvalidField("CreationPool", "must not be negative")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

// ParseLogLevel maps debug, info, warn and error onto slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}
