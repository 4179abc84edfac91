// Package config provides configuration management for the products CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	perrors "instrument-model/internal/errors"
	"instrument-model/internal/logging"
	"instrument-model/pkg/products"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Render  RenderConfig  `mapstructure:"render"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// LoggingConfig mirrors logging.LogConfig in file form.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// RenderConfig controls how products are rendered.
type RenderConfig struct {
	// Strict fails rendering on undeclared enumeration values instead of
	// emitting an empty fragment.
	Strict          bool   `mapstructure:"strict"`
	DefaultCurrency string `mapstructure:"default_currency"`
}

// CatalogConfig lists reference instruments available to the CLI.
type CatalogConfig struct {
	Bonds []BondSpec `mapstructure:"bonds"`
	Swaps []SwapSpec `mapstructure:"swaps"`
}

// BondSpec is a bond as written in config.toml.
type BondSpec struct {
	ID       string  `mapstructure:"id"`
	IDType   string  `mapstructure:"id_type"`
	Ticker   string  `mapstructure:"ticker"`
	Coupon   float64 `mapstructure:"coupon"`
	Maturity string  `mapstructure:"maturity"` // YYYY-MM-DD
}

// SwapSpec is an interest rate swap as written in config.toml.
type SwapSpec struct {
	ID               string `mapstructure:"id"`
	FixedDayCount    string `mapstructure:"fixed_day_count"`
	FloatingDayCount string `mapstructure:"floating_day_count"`
	PaymentFrequency string `mapstructure:"payment_frequency"`
	Index            string `mapstructure:"index"`
	Tenor            string `mapstructure:"tenor"`
	Effective        string `mapstructure:"effective"`
	Termination      string `mapstructure:"termination"`
	Currency         string `mapstructure:"currency"`
	TermYears        int    `mapstructure:"term_years"`
	SwapType         string `mapstructure:"swap_type"`
	LegType          string `mapstructure:"leg_type"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/instrument-model"
	}
	return filepath.Join(home, ".config", "instrument-model")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is created from the template.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := newViper(configDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config.toml: %w", err)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is available.
func Default() *Config {
	v := newViper("")
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

func newViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	def := logging.DefaultLogConfig()
	v.SetDefault("logging.level", def.Level)
	v.SetDefault("logging.console", def.Console)
	v.SetDefault("logging.file", def.File)
	v.SetDefault("logging.file_path", def.FilePath)
	v.SetDefault("logging.max_size", def.MaxSize)
	v.SetDefault("logging.max_backups", def.MaxBackups)
	v.SetDefault("logging.max_age", def.MaxAge)
	v.SetDefault("render.strict", false)
	v.SetDefault("render.default_currency", string(products.USD))

	return v
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PRODUCTS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PRODUCTS_RENDER_STRICT"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			cfg.Render.Strict = strict
		}
	}
}

// Validate validates the configuration. Catalog entries are checked when
// the catalog is built.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return perrors.Wrapf(perrors.ErrConfigInvalid, "logging.level %q (must be debug, info, warn or error)", c.Logging.Level)
	}
	if c.Logging.File && c.Logging.FilePath == "" {
		return perrors.Wrap(perrors.ErrConfigInvalid, "logging.file_path must be set when logging.file is enabled")
	}
	if _, err := products.ParseCurrency(c.Render.DefaultCurrency); err != nil {
		return perrors.Wrapf(perrors.ErrConfigInvalid, "render.default_currency: %v", err)
	}
	return nil
}

// LogConfig converts the file settings into a logging.LogConfig.
func (c *Config) LogConfig() logging.LogConfig {
	return logging.LogConfig{
		Level:      c.Logging.Level,
		Console:    c.Logging.Console,
		File:       c.Logging.File,
		FilePath:   c.Logging.FilePath,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
	}
}

// DefaultCurrency returns the configured default swap currency.
func (c *Config) DefaultCurrency() products.Currency {
	ccy, err := products.ParseCurrency(c.Render.DefaultCurrency)
	if err != nil {
		return products.USD
	}
	return ccy
}
