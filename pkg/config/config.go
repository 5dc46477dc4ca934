package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ViewPreset struct {
	ScoreStrongThreshold float64 `yaml:"score_strong_threshold"`
	Aggregation          string  `yaml:"aggregation"` // "direction" or "recommendation"
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Upstream struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"upstream"`
	Live struct {
		Enabled      bool          `yaml:"enabled"`
		Symbol       string        `yaml:"symbol"`
		PollInterval time.Duration `yaml:"poll_interval"`
		CacheTTL     time.Duration `yaml:"cache_ttl"`
	} `yaml:"live"`
	Views map[string]ViewPreset `yaml:"views"`
	Log   struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("LIVE_SYMBOL"); v != "" {
		c.Live.Symbol = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 15 * time.Second
	}
	if c.Live.Symbol == "" {
		c.Live.Symbol = "XAUUSD"
	}
	if c.Live.PollInterval == 0 {
		c.Live.PollInterval = 30 * time.Second
	}
	if c.Live.CacheTTL == 0 {
		c.Live.CacheTTL = 2 * c.Live.PollInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	for name, v := range c.Views {
		if v.Aggregation != "direction" && v.Aggregation != "recommendation" {
			return fmt.Errorf("views.%s.aggregation must be 'direction' or 'recommendation', got '%s'", name, v.Aggregation)
		}
		if v.ScoreStrongThreshold <= 0 {
			return fmt.Errorf("views.%s.score_strong_threshold must be positive", name)
		}
	}
	if c.Live.Enabled && c.Live.Symbol == "" {
		return fmt.Errorf("live.symbol is required when live polling is enabled")
	}
	return nil
}
