// Package config loads process configuration from defaults, an optional
// YAML file, RPG_* environment variables and command line flags, in
// increasing order of precedence
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// EnvPrefix is prepended to every environment variable, e.g. RPG_REDIS_ADDR
const EnvPrefix = "RPG"

// Config is the full process configuration
type Config struct {
	Port      int             `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	Tick      TickConfig      `mapstructure:"tick"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Lock      LockConfig      `mapstructure:"lock"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Encounter EncounterConfig `mapstructure:"encounter"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TickConfig controls the simulation ticker. Zero disables it.
type TickConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// RedisConfig selects the lock backend. An empty address keeps locks in
// process memory.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

// LockConfig tunes the Redis locker
type LockConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// InventoryConfig sets the carrying capacity of new characters
type InventoryConfig struct {
	MaxWeight float64 `mapstructure:"max_weight"`
}

// EncounterConfig tunes the encounter loot table
type EncounterConfig struct {
	// Materials adds crafting materials to the loot table
	Materials bool `mapstructure:"materials"`
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"port":          "port",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"tick-interval": "tick.interval",
	"redis-addr":    "redis.addr",
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", 50051)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("tick.interval", "5s")
	v.SetDefault("redis.addr", "")
	v.SetDefault("lock.ttl", "30s")
	v.SetDefault("inventory.max_weight", 100.0)
	v.SetDefault("encounter.materials", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds the known flags present in fs to their config keys
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}
	return nil
}

// Load reads the optional config file and decodes the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
				WithMeta("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"text", "json"}, vb)

	if c.Tick.Interval < 0 {
		vb.InvalidField("tick.interval", "must not be negative")
	}
	if c.Lock.TTL <= 0 {
		vb.InvalidField("lock.ttl", "must be positive")
	}
	if c.Inventory.MaxWeight <= 0 {
		vb.InvalidField("inventory.max_weight", "must be positive")
	}

	return vb.Build()
}

// SlogLevel converts the configured level name
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
