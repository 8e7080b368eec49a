package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scidiff/ncdelta/pkg/extract"
	"github.com/scidiff/ncdelta/pkg/output"
	"github.com/scidiff/ncdelta/pkg/reconcile"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the structural summary of a single file",
		Long: `Extract and display the structure of one file: dimensions with lengths,
variables with dtype, shape and point count, and group paths.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().StringVar(&compareFlags.Extractor, "extractor", "", "external structural dump command (default: treat input as a YAML facts file)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := args[0]
	if err := validateInputFile(path); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	extractor, err := buildExtractor(cfg)
	if err != nil {
		return err
	}

	facts, err := extractor.Extract(ctx, path, extract.Options{
		IncludeAttributes: true,
		IncludeChunking:   true,
	})
	if err != nil {
		return err
	}

	if err := facts.Validate(path); err != nil {
		return err
	}

	output.WriteFileSummary(os.Stdout, path, reconcile.Summarize(facts))
	return nil
}
