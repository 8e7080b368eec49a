package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scidiff/ncdelta/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "ncdelta",
		Short: "Structural comparison utility for netCDF/HDF5 files",
		Long: `ncdelta compares the structure and metadata of two scientific data
files (netCDF/HDF5) prior to ingestion into a downstream pipeline: groups,
variables, dimensions, attributes, and chunk layouts. Raw data values are
never compared and input files are opened read-only by the extraction tool.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewInspectCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
