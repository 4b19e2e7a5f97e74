package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arena-api/internal/config"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Equal(50051, cfg.Port)
	s.Equal(config.BackendMemory, cfg.Backend)
	s.Equal(24*time.Hour, cfg.SessionTTL)
	s.Equal(50, cfg.RoundCap)
	s.Equal(uint64(0), cfg.Seed)
	s.Equal(1, cfg.StatPointsPerLevel)
	s.Equal(150, cfg.CreationPool)
	s.Empty(cfg.OTelEndpoint)
	s.Equal("info", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"ARENA_PORT":                  "6000",
		"ARENA_BACKEND":               "redis",
		"ARENA_REDIS_ADDR":            "cache:6379",
		"ARENA_SESSION_TTL":           "15m",
		"ARENA_ROUND_CAP":             "20",
		"ARENA_SEED":                  "42",
		"ARENA_STAT_POINTS_PER_LEVEL": "3",
		"ARENA_OTEL_ENDPOINT":         "http://collector:4318",
		"ARENA_LOG_LEVEL":             "debug",
	})
	s.Require().NoError(err)

	s.Equal(6000, cfg.Port)
	s.Equal(config.BackendRedis, cfg.Backend)
	s.Equal("cache:6379", cfg.RedisAddr)
	s.Equal(15*time.Minute, cfg.SessionTTL)
	s.Equal(20, cfg.RoundCap)
	s.Equal(uint64(42), cfg.Seed)
	s.Equal(3, cfg.StatPointsPerLevel)
	s.Equal("http://collector:4318", cfg.OTelEndpoint)
	s.Equal("debug", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestUnprefixedVariablesAreIgnored() {
	cfg, err := config.LoadFrom(map[string]string{"PORT": "7000"})
	s.Require().NoError(err)
	s.Equal(50051, cfg.Port)
}

func (s *ConfigTestSuite) TestParseFailure() {
	_, err := config.LoadFrom(map[string]string{"ARENA_ROUND_CAP": "many"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name    string
		environ map[string]string
		field   string
	}{
		{name: "port out of range", environ: map[string]string{"ARENA_PORT": "70000"}, field: "Port"},
		{name: "unknown backend", environ: map[string]string{"ARENA_BACKEND": "postgres"}, field: "Backend"},
		{name: "redis without address", environ: map[string]string{"ARENA_BACKEND": "redis", "ARENA_REDIS_ADDR": " "}, field: "RedisAddr"},
		{name: "sqlite without path", environ: map[string]string{"ARENA_BACKEND": "sqlite", "ARENA_SQLITE_PATH": " "}, field: "SQLitePath"},
		{name: "zero ttl", environ: map[string]string{"ARENA_SESSION_TTL": "0s"}, field: "SessionTTL"},
		{name: "zero round cap", environ: map[string]string{"ARENA_ROUND_CAP": "0"}, field: "RoundCap"},
		{name: "negative points", environ: map[string]string{"ARENA_STAT_POINTS_PER_LEVEL": "-1"}, field: "StatPointsPerLevel"},
		{name: "bad log level", environ: map[string]string{"ARENA_LOG_LEVEL": "loud"}, field: "LogLevel"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFrom(tc.environ)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestParseLogLevel() {
	level, err := config.ParseLogLevel("warn")
	s.Require().NoError(err)
	s.Equal(slog.LevelWarn, level)

	level, err = config.ParseLogLevel("ERROR")
	s.Require().NoError(err)
	s.Equal(slog.LevelError, level)

	_, err = config.ParseLogLevel("")
	s.Error(err)
}
