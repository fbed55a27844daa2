package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Screening struct {
		Workers       int     `yaml:"workers"`
		MinConfidence float64 `yaml:"min_confidence"`
		MinPotential  float64 `yaml:"min_potential"`
	} `yaml:"screening"`
	Memoizer struct {
		Enabled    bool          `yaml:"enabled"`
		Backend    string        `yaml:"backend"` // memory, redis or layered
		TTL        time.Duration `yaml:"ttl"`
		MaxEntries int           `yaml:"max_entries"`
		Redis      struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"memoizer"`
	RateLimit struct {
		Enabled bool    `yaml:"enabled"`
		RPS     float64 `yaml:"rps"`
		Burst   int     `yaml:"burst"`
	} `yaml:"rate_limit"`
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

	if v := os.Getenv("MEANREV_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("MEANREV_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MEANREV_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("MEANREV_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Memoizer.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Memoizer.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Screening.Workers == 0 {
		c.Screening.Workers = 8
	}
	if c.Screening.MinConfidence == 0 {
		c.Screening.MinConfidence = 40
	}
	if c.Screening.MinPotential == 0 {
		c.Screening.MinPotential = 10
	}
	if c.Memoizer.Backend == "" {
		c.Memoizer.Backend = "memory"
	}
	if c.Memoizer.TTL == 0 {
		c.Memoizer.TTL = 10 * time.Minute
	}
	if c.Memoizer.MaxEntries == 0 {
		c.Memoizer.MaxEntries = 10000
	}
	if c.Memoizer.Redis.Port == 0 {
		c.Memoizer.Redis.Port = 6379
	}
	if c.Memoizer.Redis.Prefix == "" {
		c.Memoizer.Redis.Prefix = "meanrev"
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 50
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 100
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Memoizer.Backend {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("memoizer.backend must be 'memory', 'redis' or 'layered', got '%s'", c.Memoizer.Backend)
	}
	if c.Screening.Workers < 0 {
		return fmt.Errorf("screening.workers cannot be negative")
	}
	return nil
}
