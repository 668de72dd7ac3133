// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Geocoder GeocoderConfig `yaml:"geocoder" mapstructure:"geocoder"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Retry    RetryConfig    `yaml:"retry" mapstructure:"retry"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// GeocoderConfig configures the geocoding service client.
type GeocoderConfig struct {
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	Benchmark  string  `yaml:"benchmark" mapstructure:"benchmark"`
	Vintage    string  `yaml:"vintage" mapstructure:"vintage"`
	Layers     string  `yaml:"layers" mapstructure:"layers"`
	ReturnType string  `yaml:"return_type" mapstructure:"return_type"`
	RateLimit  float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// CacheConfig configures the optional response cache.
type CacheConfig struct {
	Driver   string `yaml:"driver" mapstructure:"driver"` // "", "sqlite", or "postgres"
	DSN      string `yaml:"dsn" mapstructure:"dsn"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// RetryConfig configures retry and circuit breaker behavior for service
// calls.
type RetryConfig struct {
	MaxAttempts      int `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialMillis    int `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	MaxBackoffSecs   int `yaml:"max_backoff_secs" mapstructure:"max_backoff_secs"`
	BreakerThreshold int `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	BreakerResetSecs int `yaml:"breaker_reset_secs" mapstructure:"breaker_reset_secs"`
}

// ServerConfig configures the HTTP facade.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CENSUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("geocoder.base_url", "https://geocoding.geo.census.gov")
	v.SetDefault("geocoder.benchmark", "CURRENT")
	v.SetDefault("geocoder.vintage", "Current")
	v.SetDefault("geocoder.layers", "all")
	v.SetDefault("geocoder.return_type", "geographies")
	v.SetDefault("geocoder.rate_limit", 50)
	v.SetDefault("cache.driver", "")
	v.SetDefault("cache.ttl_hours", 24)
	v.SetDefault("retry.max_attempts", 5)
	v.SetDefault("retry.initial_backoff_ms", 500)
	v.SetDefault("retry.max_backoff_secs", 10)
	v.SetDefault("retry.breaker_threshold", 5)
	v.SetDefault("retry.breaker_reset_secs", 30)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks configuration consistency for the given mode ("client" or
// "serve").
func (c *Config) Validate(mode string) error {
	var problems []string

	if c.Geocoder.RateLimit <= 0 {
		problems = append(problems, "geocoder.rate_limit must be > 0")
	}
	switch c.Cache.Driver {
	case "", "sqlite", "postgres":
	default:
		problems = append(problems, "cache.driver must be empty, sqlite, or postgres")
	}
	if c.Cache.Driver != "" && c.Cache.DSN == "" {
		problems = append(problems, "cache.dsn is required when cache.driver is set")
	}

	switch mode {
	case "client":
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
