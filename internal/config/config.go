// Package config provides Viper-based configuration loading for handodds.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CalculatorConfig holds defaults and limits for hand calculations.
type CalculatorConfig struct {
	// DeckSize is the deck size used when none is given.
	DeckSize int `mapstructure:"deck_size"`
	// HandSize is the opening hand size used when none is given.
	HandSize int `mapstructure:"hand_size"`
	// MaxCategories caps how many cards one calculation may track; 0 = no cap.
	MaxCategories int `mapstructure:"max_categories"`
	// Precision is the number of decimals printed for percentages.
	Precision int `mapstructure:"precision"`
	// DeckSizeMin and DeckSizeMax bound a legal deck. Decks outside the
	// range are still calculated, with a warning.
	DeckSizeMin int `mapstructure:"deck_size_min"`
	DeckSizeMax int `mapstructure:"deck_size_max"`
}

// LegalDeckSize reports whether n lies within [DeckSizeMin, DeckSizeMax].
func (c CalculatorConfig) LegalDeckSize(n int) bool {
	return n >= c.DeckSizeMin && n <= c.DeckSizeMax
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCalculator(c.Calculator); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCalculator(c CalculatorConfig) error {
	var errs []string
	if c.DeckSize < 1 {
		errs = append(errs, fmt.Sprintf("calculator.deck_size must be >= 1, got %d", c.DeckSize))
	}
	if c.HandSize < 1 || c.HandSize > c.DeckSize {
		errs = append(errs, fmt.Sprintf("calculator.hand_size must be in [1, deck_size], got %d", c.HandSize))
	}
	if c.MaxCategories < 0 {
		errs = append(errs, fmt.Sprintf("calculator.max_categories must be >= 0, got %d", c.MaxCategories))
	}
	if c.Precision < 0 || c.Precision > 10 {
		errs = append(errs, fmt.Sprintf("calculator.precision must be in [0, 10], got %d", c.Precision))
	}
	if c.DeckSizeMin < 1 {
		errs = append(errs, fmt.Sprintf("calculator.deck_size_min must be >= 1, got %d", c.DeckSizeMin))
	}
	if c.DeckSizeMin > c.DeckSizeMax {
		errs = append(errs, "calculator.deck_size_min must not exceed calculator.deck_size_max")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with HANDODDS_ prefix
	v.SetEnvPrefix("HANDODDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("calculator.deck_size", 40)
	v.SetDefault("calculator.hand_size", 5)
	v.SetDefault("calculator.max_categories", 5)
	v.SetDefault("calculator.precision", 2)
	v.SetDefault("calculator.deck_size_min", 40)
	v.SetDefault("calculator.deck_size_max", 60)
}
