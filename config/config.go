package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Model     ModelConfig     `yaml:"model"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the model registry connection configuration.
// An empty Driver disables the registry.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // postgres | sqlite
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// Enabled reports whether a registry database is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Driver != ""
}

// ModelConfig selects and configures the regression backend.
type ModelConfig struct {
	Source        string        `yaml:"source"` // file | database | remote
	Path          string        `yaml:"path"`
	Name          string        `yaml:"name"`
	SeedPath      string        `yaml:"seed_path"`
	ReloadSeconds int           `yaml:"reload_seconds"`
	Reload        time.Duration `yaml:"-"`
	Remote        RemoteConfig  `yaml:"remote"`
}

// RemoteConfig describes an HTTP inference service.
type RemoteConfig struct {
	URL            string            `yaml:"url"`
	Headers        map[string]string `yaml:"headers"`
	HTTPProxy      string            `yaml:"http_proxy"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Timeout        time.Duration     `yaml:"-"`
}

// EstimatorConfig holds the form defaults and display settings.
type EstimatorConfig struct {
	TimeLayout        string  `yaml:"time_layout"`
	Trigger           string  `yaml:"trigger"` // on_demand | reactive
	DefaultWakeTime   string  `yaml:"default_wake_time"`
	DefaultSleepHours float64 `yaml:"default_sleep_hours"`
	DefaultCoffeeCups *int    `yaml:"default_coffee_cups"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

const (
	SourceFile     = "file"
	SourceDatabase = "database"
	SourceRemote   = "remote"

	TriggerOnDemand = "on_demand"
	TriggerReactive = "reactive"
)

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields. Load calls it; tests building a Config
// by hand may call it directly.
func (c *Config) ApplyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 300
	}
	c.Server.CacheTTL = time.Duration(c.Server.CacheTTLSeconds) * time.Second

	if c.Model.Source == "" {
		c.Model.Source = SourceFile
	}
	if c.Model.Name == "" {
		c.Model.Name = "SleepCalculator"
	}
	if c.Model.ReloadSeconds <= 0 {
		c.Model.ReloadSeconds = 60
	}
	c.Model.Reload = time.Duration(c.Model.ReloadSeconds) * time.Second
	if c.Model.Remote.TimeoutSeconds <= 0 {
		c.Model.Remote.TimeoutSeconds = 5
	}
	c.Model.Remote.Timeout = time.Duration(c.Model.Remote.TimeoutSeconds) * time.Second

	if c.Estimator.TimeLayout == "" {
		c.Estimator.TimeLayout = "3:04 PM"
	}
	if c.Estimator.Trigger == "" {
		c.Estimator.Trigger = TriggerOnDemand
	}
	if c.Estimator.DefaultWakeTime == "" {
		c.Estimator.DefaultWakeTime = "06:32"
	}
	if c.Estimator.DefaultSleepHours == 0 {
		c.Estimator.DefaultSleepHours = 8
	}
	if c.Estimator.DefaultCoffeeCups == nil {
		one := 1
		c.Estimator.DefaultCoffeeCups = &one
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Model.Source {
	case SourceFile:
		if c.Model.Path == "" {
			return errors.New("model.path is required when model.source=file")
		}
	case SourceDatabase:
		if !c.Database.Enabled() {
			return errors.New("database.driver is required when model.source=database")
		}
	case SourceRemote:
		if c.Model.Remote.URL == "" {
			return errors.New("model.remote.url is required when model.source=remote")
		}
	default:
		return fmt.Errorf("model.source must be one of file, database, remote; got %q", c.Model.Source)
	}

	switch c.Database.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite; got %q", c.Database.Driver)
	}
	if c.Database.Enabled() && c.Database.DSN == "" {
		return errors.New("database.dsn is required when database.driver is set")
	}

	if c.Estimator.Trigger != TriggerOnDemand && c.Estimator.Trigger != TriggerReactive {
		return fmt.Errorf("estimator.trigger must be %s or %s; got %q", TriggerOnDemand, TriggerReactive, c.Estimator.Trigger)
	}
	return nil
}
