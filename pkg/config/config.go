package config

import (
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Retry   RetryConfig   `yaml:"retry"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig holds default scan thresholds
type ScanConfig struct {
	MaxDepth int `yaml:"max_depth"`
	MinFiles int `yaml:"min_files"`
}

// RetryConfig holds retry settings for directory listings
type RetryConfig struct {
	MaxRetries int      `yaml:"max_retries"`
	RetryDelay Duration `yaml:"retry_delay"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Formats  string `yaml:"formats"`  // comma-separated: "json", "json,html,csv", "all"
	Progress bool   `yaml:"progress"` // Show progress bar during scans
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxDepth: 3,
			MinFiles: 3,
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			RetryDelay: Duration(100 * time.Millisecond),
		},
		Output: OutputConfig{
			Formats:  "json",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Scan.MaxDepth < 0 {
		return &models.ValidationError{
			Field:   "scan.max_depth",
			Message: "must be zero or greater",
		}
	}

	if c.Scan.MinFiles < 0 {
		return &models.ValidationError{
			Field:   "scan.min_files",
			Message: "must be zero or greater",
		}
	}

	if c.Retry.MaxRetries < 0 {
		return &models.ValidationError{
			Field:   "retry.max_retries",
			Message: "must be zero or greater",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
