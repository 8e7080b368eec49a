package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scidiff/ncdelta/pkg/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Compare.OnlyDifferences {
		t.Error("only_differences should default to false")
	}
	if !cfg.Compare.IncludeAttributes {
		t.Error("include_attributes should default to true")
	}
	if cfg.Compare.IncludeChunking {
		t.Error("include_chunking should default to false")
	}
	if cfg.Output.Format != "human" {
		t.Errorf("output.format = %s, want human", cfg.Output.Format)
	}
	if !cfg.Output.Progress {
		t.Error("output.progress should default to true")
	}
	if cfg.Logging.Enabled {
		t.Error("logging should default to disabled")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "invalid output format",
			mutate:    func(c *Config) { c.Output.Format = "xml" },
			wantField: "output.format",
		},
		{
			name:      "invalid logging format",
			mutate:    func(c *Config) { c.Logging.Format = "syslog" },
			wantField: "logging.format",
		},
		{
			name:      "invalid logging level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
		{
			name: "logging enabled without file",
			mutate: func(c *Config) {
				c.Logging.Enabled = true
				c.Logging.File = ""
			},
			wantField: "logging.file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var optErr *models.InvalidOptionsError
			if !errors.As(err, &optErr) {
				t.Fatalf("Validate() error = %v, want *InvalidOptionsError", err)
			}
			if optErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", optErr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("AppliesValuesOverDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `compare:
  only_differences: true
  include_chunking: true
extractor:
  command: ncdelta-extract
  args: ["--fast"]
output:
  format: json
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		if !cfg.Compare.OnlyDifferences {
			t.Error("only_differences should be true")
		}
		if !cfg.Compare.IncludeChunking {
			t.Error("include_chunking should be true")
		}
		if cfg.Extractor.Command != "ncdelta-extract" {
			t.Errorf("extractor.command = %s, want ncdelta-extract", cfg.Extractor.Command)
		}
		if len(cfg.Extractor.Args) != 1 || cfg.Extractor.Args[0] != "--fast" {
			t.Errorf("extractor.args = %v, want [--fast]", cfg.Extractor.Args)
		}
		if cfg.Output.Format != "json" {
			t.Errorf("output.format = %s, want json", cfg.Output.Format)
		}

		// Unspecified keys keep their defaults
		if !cfg.Compare.IncludeAttributes {
			t.Error("include_attributes should keep its default")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("logging.level = %s, want info", cfg.Logging.Level)
		}
	})

	t.Run("RejectsInvalidValues", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected error for invalid output format")
		}
	})

	t.Run("RejectsMissingFile", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("RejectsMalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("compare: [not a map"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestSaveToFile(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")

		cfg := Default()
		cfg.Compare.OnlyDifferences = true
		cfg.Output.Format = "json"

		if err := SaveToFile(cfg, path); err != nil {
			t.Fatalf("SaveToFile() error = %v", err)
		}

		loaded, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if !loaded.Compare.OnlyDifferences {
			t.Error("only_differences should survive the round trip")
		}
		if loaded.Output.Format != "json" {
			t.Errorf("output.format = %s, want json", loaded.Output.Format)
		}
	})

	t.Run("RejectsInvalidConfig", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "trace"

		if err := SaveToFile(cfg, filepath.Join(t.TempDir(), "config.yaml")); err == nil {
			t.Error("expected error for invalid config")
		}
	})
}
