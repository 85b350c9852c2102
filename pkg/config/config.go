package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"OracleScan/pkg/util"

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
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Provider struct {
		BaseURL    string        `yaml:"base_url"`
		UserAgent  string        `yaml:"user_agent"`
		VsCurrency string        `yaml:"vs_currency"`
		ChartDays  int           `yaml:"chart_days"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"provider"`
	Scan struct {
		DefaultSymbols string `yaml:"default_symbols"`
		MaxSymbols     int    `yaml:"max_symbols"`
		RateLimit      struct {
			Enabled      bool    `yaml:"enabled"`
			Burst        float64 `yaml:"burst"`
			RefillPerSec float64 `yaml:"refill_per_sec"`
		} `yaml:"rate_limit"`
	} `yaml:"scan"`
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
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("SCAN_SYMBOLS"); v != "" {
		c.Scan.DefaultSymbols = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
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
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Provider.UserAgent == "" {
		c.Provider.UserAgent = "oracle-vision-v3"
	}
	if c.Provider.VsCurrency == "" {
		c.Provider.VsCurrency = "usd"
	}
	if c.Provider.ChartDays == 0 {
		c.Provider.ChartDays = 2
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 10 * time.Second
	}
	if c.Scan.DefaultSymbols == "" {
		c.Scan.DefaultSymbols = "btc,eth,sol"
	}
	if c.Scan.MaxSymbols == 0 {
		c.Scan.MaxSymbols = 12
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if !strings.HasPrefix(c.Provider.BaseURL, "http") {
		return fmt.Errorf("provider.base_url must be an http(s) URL, got '%s'", c.Provider.BaseURL)
	}
	if c.Scan.DefaultSymbols == "" {
		return fmt.Errorf("scan.default_symbols cannot be empty")
	}
	if c.Scan.MaxSymbols < 1 {
		return fmt.Errorf("scan.max_symbols must be positive")
	}
	return nil
}
