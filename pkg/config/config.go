package config

import (
	"github.com/scidiff/ncdelta/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare   CompareConfig   `yaml:"compare"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CompareConfig holds default comparison options
type CompareConfig struct {
	OnlyDifferences   bool `yaml:"only_differences"`
	IncludeAttributes bool `yaml:"include_attributes"`
	IncludeChunking   bool `yaml:"include_chunking"`
}

// ExtractorConfig holds external extractor settings.
// An empty Command means input paths are pre-extracted YAML facts files.
type ExtractorConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show the stage progress bar
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
		Compare: CompareConfig{
			OnlyDifferences:   false,
			IncludeAttributes: true,
			IncludeChunking:   false,
		},
		Extractor: ExtractorConfig{
			Command: "",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.InvalidOptionsError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.InvalidOptionsError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.InvalidOptionsError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.Enabled && c.Logging.File == "" {
		return &models.InvalidOptionsError{
			Field:   "logging.file",
			Message: "required when logging is enabled",
		}
	}

	return nil
}
