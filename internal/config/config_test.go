package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(config.New(), "")
	s.Require().NoError(err)

	s.Equal(50051, cfg.Port)
	s.Equal("info", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Equal(5*time.Second, cfg.Tick.Interval)
	s.Empty(cfg.Redis.Addr)
	s.Equal(30*time.Second, cfg.Lock.TTL)
	s.Equal(100.0, cfg.Inventory.MaxWeight)
	s.False(cfg.Encounter.Materials)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("RPG_PORT", "6000")
	s.T().Setenv("RPG_TICK_INTERVAL", "1s")
	s.T().Setenv("RPG_REDIS_ADDR", "localhost:6379")
	s.T().Setenv("RPG_INVENTORY_MAX_WEIGHT", "42.5")
	s.T().Setenv("RPG_ENCOUNTER_MATERIALS", "true")

	cfg, err := config.Load(config.New(), "")
	s.Require().NoError(err)

	s.Equal(6000, cfg.Port)
	s.Equal(time.Second, cfg.Tick.Interval)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(42.5, cfg.Inventory.MaxWeight)
	s.True(cfg.Encounter.Materials)
}

func (s *ConfigTestSuite) TestConfigFile() {
	path := filepath.Join(s.T().TempDir(), "adventure.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
port: 7000
log:
  level: debug
  format: json
tick:
  interval: 0s
lock:
  ttl: 10s
`), 0o600))

	cfg, err := config.Load(config.New(), path)
	s.Require().NoError(err)

	s.Equal(7000, cfg.Port)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal(time.Duration(0), cfg.Tick.Interval)
	s.Equal(10*time.Second, cfg.Lock.TTL)
	s.Equal(100.0, cfg.Inventory.MaxWeight, "unset keys keep defaults")
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := config.Load(config.New(), filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestFlagsBeatEnvironment() {
	s.T().Setenv("RPG_PORT", "6000")

	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.Int("port", 50051, "")
	fs.String("log-level", "info", "")
	fs.String("redis-addr", "", "")
	s.Require().NoError(fs.Parse([]string{"--port=9000", "--log-level=warn"}))

	v := config.New()
	s.Require().NoError(config.BindFlags(v, fs))

	cfg, err := config.Load(v, "")
	s.Require().NoError(err)

	s.Equal(9000, cfg.Port)
	s.Equal("warn", cfg.Log.Level)
	s.Empty(cfg.Redis.Addr, "unchanged flags fall through to defaults")
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"port out of range", map[string]string{"RPG_PORT": "70000"}, "port"},
		{"unknown log level", map[string]string{"RPG_LOG_LEVEL": "loud"}, "log.level"},
		{"unknown log format", map[string]string{"RPG_LOG_FORMAT": "xml"}, "log.format"},
		{"negative tick", map[string]string{"RPG_TICK_INTERVAL": "-1s"}, "tick.interval"},
		{"zero lock ttl", map[string]string{"RPG_LOCK_TTL": "0s"}, "lock.ttl"},
		{"zero capacity", map[string]string{"RPG_INVENTORY_MAX_WEIGHT": "0"}, "inventory.max_weight"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for k, v := range tc.env {
				s.T().Setenv(k, v)
			}

			_, err := config.Load(config.New(), "")

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestLogger() {
	cfg := &config.Config{Log: config.LogConfig{Level: "warn", Format: "json"}}
	s.Equal(slog.LevelWarn, cfg.SlogLevel())

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "player_id", "p1")

	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), `"player_id":"p1"`)
}
