package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/scidiff/ncdelta/pkg/models"
	"github.com/scidiff/ncdelta/pkg/output"
	"github.com/scidiff/ncdelta/pkg/runner"
)

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare the structure of two netCDF/HDF5 files",
		Long: `Compare the structural metadata of two scientific data files: groups,
variables, dimensions, attributes, and chunk layouts. Raw data values are
never compared and input files are never modified.

Without --extractor, the input paths are treated as YAML structural dumps
produced by an external extraction tool.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	addCompareFlags(cmd)

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fileA, fileB := args[0], args[1]
	if err := validateCompareArgs(fileA, fileB); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command-line flags override configured defaults
	onlyDiffs := cfg.Compare.OnlyDifferences
	if cmd.Flags().Changed("only-differences") {
		onlyDiffs = compareFlags.OnlyDifferences
	}
	attributes := cfg.Compare.IncludeAttributes
	if cmd.Flags().Changed("attributes") {
		attributes = compareFlags.Attributes
	}
	chunking := cfg.Compare.IncludeChunking
	if cmd.Flags().Changed("chunking") {
		chunking = compareFlags.Chunking
	}
	format := cfg.Output.Format
	if compareFlags.Output != "" {
		format = compareFlags.Output
	}

	opts, err := models.NewComparisonOptions(onlyDiffs, attributes, chunking,
		compareFlags.ReportText, compareFlags.ReportCSV)
	if err != nil {
		return err
	}

	extractor, err := buildExtractor(cfg)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	req := runner.Request{
		FileA:     fileA,
		FileB:     fileB,
		Extractor: extractor,
		Options:   opts,
	}

	showProgress := cfg.Output.Progress && !compareFlags.NoProgress &&
		!globalFlags.Quiet && format == "human"
	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(len(runner.Stages))
		req.OnStage = func(stage runner.Stage) {
			bar.Increment()
		}
	}

	fut, err := runner.New(logger).Submit(ctx, req)
	if err != nil {
		return err
	}

	result, err := fut.Wait(ctx)
	if bar != nil {
		bar.SetCurrent(int64(len(runner.Stages)))
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if !globalFlags.Quiet {
		formatter := output.ForFormat(format)
		if err := formatter.Write(os.Stdout, result); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	}

	os.Exit(result.Status().ExitCode())
	return nil
}
