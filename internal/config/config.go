// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

// DataConfig controls the synthetic dataset generator.
type DataConfig struct {
	// Seed drives the transaction generator. The same seed always produces
	// the same dataset.
	Seed int64 `mapstructure:"seed"`
	// AnchorDate is the calendar date treated as "today" for the bounded
	// dataset, in YYYY-MM-DD form.
	AnchorDate   string `mapstructure:"anchor_date"`
	AnnualTarget int64  `mapstructure:"annual_target"`
}

// AssistantConfig holds the optional chat-completion API configuration.
// An empty APIKey disables the external call entirely.
type AssistantConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Anchor parses the configured anchor date.
func (d *DataConfig) Anchor() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", d.AnchorDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor date %q: %w", d.AnchorDate, err)
	}
	return t, nil
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Enable environment variable override
	// Environment variables use underscore separator and uppercase
	// e.g., DATA_SEED, ASSISTANT_API_KEY
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional - env vars can provide all config)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we can use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Dataset defaults
	v.SetDefault("data.seed", 2025)
	v.SetDefault("data.anchor_date", "2025-07-22")
	v.SetDefault("data.annual_target", 50_000_000)

	// Assistant defaults
	v.SetDefault("assistant.base_url", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("assistant.model", "llama-3.1-70b-versatile")
	v.SetDefault("assistant.max_tokens", 800)
	v.SetDefault("assistant.temperature", 0.3)
	v.SetDefault("assistant.timeout", "15s")
}
