// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"archcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// AWS contains AWS-specific configuration
	AWS AWSConfig `json:"aws"`

	// Pricing contains pricing-lookup configuration
	Pricing PricingConfig `json:"pricing"`

	// LLM contains design-assistant configuration
	LLM LLMConfig `json:"llm,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// AWSConfig contains AWS-specific settings
type AWSConfig struct {
	// DefaultRegion applies to nodes that do not declare a region
	DefaultRegion string `json:"default_region"`

	// Profile is the AWS profile to use
	Profile string `json:"profile,omitempty"`
}

// PricingConfig contains pricing-lookup settings
type PricingConfig struct {
	// CacheEnabled enables the per-run price cache
	CacheEnabled bool `json:"cache_enabled"`

	// QueryTimeoutSeconds bounds each catalog query; a timeout is treated
	// the same as a lookup miss
	QueryTimeoutSeconds int `json:"query_timeout_seconds"`

	// MaxResultPages caps Pricing API pagination per query
	MaxResultPages int `json:"max_result_pages"`
}

// QueryTimeout returns the per-query timeout as a duration
func (c PricingConfig) QueryTimeout() time.Duration {
	if c.QueryTimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// LLMConfig contains design-assistant settings
type LLMConfig struct {
	// Model is the model name passed to the provider
	Model string `json:"model,omitempty"`

	// MaxQuestions is how many requirement questions the assistant asks
	MaxQuestions int `json:"max_questions"`

	// TimeoutSeconds bounds each provider call
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		AWS: AWSConfig{
			DefaultRegion: "ap-south-1",
		},
		Pricing: PricingConfig{
			CacheEnabled:        true,
			QueryTimeoutSeconds: 20,
			MaxResultPages:      10,
		},
		LLM: LLMConfig{
			MaxQuestions:   5,
			TimeoutSeconds: 60,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
