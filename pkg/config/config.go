package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gahoccode/richslow/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		SlowThreshold   time.Duration `yaml:"slow_threshold"`
		CORS            bool          `yaml:"cors"`
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
	VCI struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		RateLimit int           `yaml:"rate_limit"` // requests per second
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"vci"`
	Valuation struct {
		BenchmarkSymbol   string  `yaml:"benchmark_symbol"`
		MinObservations   int     `yaml:"min_observations"`
		TaxRate           float64 `yaml:"tax_rate"`
		RiskFreeRate      float64 `yaml:"risk_free_rate"`
		MarketRiskPremium float64 `yaml:"market_risk_premium"`
		CreditSpread      float64 `yaml:"credit_spread"`
	} `yaml:"valuation"`
	Benchmark struct {
		Workers int `yaml:"workers"`
	} `yaml:"benchmark"`
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
	if v := os.Getenv("VCI_BASE_URL"); v != "" {
		c.VCI.BaseURL = v
	}
	if v := os.Getenv("BENCHMARK_SYMBOL"); v != "" {
		c.Valuation.BenchmarkSymbol = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.VCI.BaseURL == "" {
		return fmt.Errorf("vci.base_url is required")
	}
	if c.Valuation.MinObservations < 0 {
		return fmt.Errorf("valuation.min_observations cannot be negative, got %d", c.Valuation.MinObservations)
	}
	if c.Benchmark.Workers < 0 {
		return fmt.Errorf("benchmark.workers cannot be negative, got %d", c.Benchmark.Workers)
	}
	return nil
}
