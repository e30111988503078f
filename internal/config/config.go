package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	defaultReconcileInterval   = 30 * time.Minute
	defaultReconcileCron       = "@daily"
	defaultScheduleCacheTTL    = 10 * time.Minute
	defaultScheduleCacheSizeMB = 16
	defaultRateLimitPerMin     = 6
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// reconciler
	ReconcileInterval        Duration `toml:"reconcile_interval"`
	ReconcileOnStart         *bool    `toml:"reconcile_on_start"`
	ReconcileCron            string   `toml:"reconcile_cron"`
	ReconcileRateLimitPerMin int      `toml:"reconcile_rate_limit_per_min"`
	// Timezone decides which calendar day "today" is; dates themselves carry no zone.
	Timezone string `toml:"timezone"`

	ScheduleCacheTTL    Duration `toml:"schedule_cache_ttl"`
	ScheduleCacheSizeMB int      `toml:"schedule_cache_size_mb"`

	AllowedOrigins []string `toml:"allowed_origins"`
	MCPEnabled     bool     `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return nil, fmt.Errorf("no config for env: %s", env)
		}
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return nil, fmt.Errorf("no config for env: %s", env)
		}
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

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
	cfg.applyDefaults()
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.ReconcileInterval.Duration <= 0 {
		c.ReconcileInterval.Duration = defaultReconcileInterval
	}
	if c.ReconcileOnStart == nil {
		onStart := true
		c.ReconcileOnStart = &onStart
	}
	if c.ReconcileCron == "" {
		c.ReconcileCron = defaultReconcileCron
	}
	if c.ReconcileRateLimitPerMin <= 0 {
		c.ReconcileRateLimitPerMin = defaultRateLimitPerMin
	}
	if c.ScheduleCacheTTL.Duration <= 0 {
		c.ScheduleCacheTTL.Duration = defaultScheduleCacheTTL
	}
	if c.ScheduleCacheSizeMB <= 0 {
		c.ScheduleCacheSizeMB = defaultScheduleCacheSizeMB
	}
}

// Location resolves the configured timezone; empty means the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Duration lets TOML carry values like "30m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Secrets are read from the environment (optionally populated from a .env file).
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	APISecret        string `env:"TRAINING_API_SECRET"`
	RedisPassword    string `env:"TRAINING_REDIS_PASS"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
