package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/ncdelta/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// CompareFlags holds compare command flag values
type CompareFlags struct {
	OnlyDifferences bool
	Attributes      bool
	Chunking        bool
	ReportText      string
	ReportCSV       string
	Extractor       string
	Output          string
	NoProgress      bool
}

var compareFlags CompareFlags

// addCompareFlags registers the compare command flags
func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&compareFlags.OnlyDifferences, "only-differences", false, "suppress matching entries from the result detail")
	cmd.Flags().BoolVar(&compareFlags.Attributes, "attributes", true, "compare global and per-variable attributes")
	cmd.Flags().BoolVar(&compareFlags.Chunking, "chunking", false, "compare variable chunk layouts")
	cmd.Flags().StringVar(&compareFlags.ReportText, "report-text", "", "write a plain-text report to this path")
	cmd.Flags().StringVar(&compareFlags.ReportCSV, "report-csv", "", "write a CSV report to this path")
	cmd.Flags().StringVar(&compareFlags.Extractor, "extractor", "", "external structural dump command (default: treat inputs as YAML facts files)")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().BoolVar(&compareFlags.NoProgress, "no-progress", false, "disable the stage progress bar")
}
