package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultApiBaseURL   = "http://localhost:3001"
	defaultShareBaseURL = "http://localhost:5173"
	defaultStaleTime    = 5 * time.Minute
	defaultCacheSizeMB  = 16
	defaultLogLevel     = "info"
)

type Config struct {
	Environment string `toml:"environment"`
	// remote blog service
	ApiBaseURL     string   `toml:"api_base_url"`
	RequestTimeout Duration `toml:"request_timeout"`
	// query cache
	StaleTime   Duration `toml:"stale_time"`
	CacheSizeMB int      `toml:"cache_size_mb"`
	// sharing
	ShareBaseURL string   `toml:"share_base_url"`
	ShareCommand []string `toml:"share_command"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics, empty addr disables the endpoint
	MetricsAddr string `toml:"metrics_addr"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.applyDefaults(env)
	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.ApiBaseURL == "" {
		c.ApiBaseURL = defaultApiBaseURL
	}
	c.ApiBaseURL = strings.TrimSuffix(c.ApiBaseURL, "/")
	if c.StaleTime.Duration == 0 {
		c.StaleTime.Duration = defaultStaleTime
	}
	if c.CacheSizeMB <= 0 {
		c.CacheSizeMB = defaultCacheSizeMB
	}
	if c.ShareBaseURL == "" {
		c.ShareBaseURL = defaultShareBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Duration decodes TOML strings like "5m" or "1m30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
