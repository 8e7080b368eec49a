package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scidiff/ncdelta/internal/platform"
	"github.com/scidiff/ncdelta/pkg/config"
	"github.com/scidiff/ncdelta/pkg/extract"
	"github.com/scidiff/ncdelta/pkg/logging"
)

// validateInputFile checks that an input file exists and is a regular file
func validateInputFile(path string) error {
	if err := platform.ValidatePath(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to access input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a file: %s", path)
	}

	return nil
}

// validateCompareArgs validates the two input file paths
func validateCompareArgs(fileA, fileB string) error {
	if err := validateInputFile(fileA); err != nil {
		return err
	}
	if err := validateInputFile(fileB); err != nil {
		return err
	}

	absA, err := filepath.Abs(platform.NormalizePath(fileA))
	if err != nil {
		return fmt.Errorf("failed to resolve file A path: %w", err)
	}
	absB, err := filepath.Abs(platform.NormalizePath(fileB))
	if err != nil {
		return fmt.Errorf("failed to resolve file B path: %w", err)
	}
	if absA == absB {
		return fmt.Errorf("file A and file B cannot be the same: %s", absA)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// buildExtractor picks the extractor: an explicit --extractor command wins,
// then the configured command; with neither, input paths are treated as
// pre-extracted YAML facts files
func buildExtractor(cfg *config.Config) (extract.Extractor, error) {
	if compareFlags.Extractor != "" {
		parts := strings.Fields(compareFlags.Extractor)
		return extract.NewCommand(parts[0], parts[1:]...), nil
	}

	if cfg.Extractor.Command != "" {
		return extract.NewCommand(cfg.Extractor.Command, cfg.Extractor.Args...), nil
	}

	return extract.NewFactsFile(), nil
}

// buildLogger builds the configured logger; logging disabled yields a null logger
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}
