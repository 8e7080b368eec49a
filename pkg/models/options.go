package models

import (
	"os"
	"path/filepath"
)

// ComparisonOptions describes what the user asked to compare and how.
// It is constructed once per compare action and never mutated mid-run.
type ComparisonOptions struct {
	// OnlyDifferences suppresses matching entries from the result detail
	// lists (counts still reflect the pre-filter numbers)
	OnlyDifferences bool

	// IncludeAttributes enables attribute-level comparison
	IncludeAttributes bool

	// IncludeChunking enables chunk-layout comparison for variables
	IncludeChunking bool

	// ReportTextPath is the optional destination for a plain-text report
	ReportTextPath string

	// ReportCSVPath is the optional destination for a CSV report
	ReportCSVPath string
}

// NewComparisonOptions builds a validated ComparisonOptions value.
// It fails with *InvalidOptionsError if both report paths point at the same
// file, or if a report path's parent directory does not exist.
func NewComparisonOptions(onlyDiffs, attributes, chunking bool, reportText, reportCSV string) (ComparisonOptions, error) {
	opts := ComparisonOptions{
		OnlyDifferences:   onlyDiffs,
		IncludeAttributes: attributes,
		IncludeChunking:   chunking,
		ReportTextPath:    reportText,
		ReportCSVPath:     reportCSV,
	}

	if reportText != "" && reportCSV != "" &&
		filepath.Clean(reportText) == filepath.Clean(reportCSV) {
		return ComparisonOptions{}, &InvalidOptionsError{
			Field:   "report paths",
			Message: "text and CSV reports cannot share the same file: " + reportText,
		}
	}

	if err := checkReportParent("report_text_path", reportText); err != nil {
		return ComparisonOptions{}, err
	}
	if err := checkReportParent("report_csv_path", reportCSV); err != nil {
		return ComparisonOptions{}, err
	}

	return opts, nil
}

// checkReportParent verifies that the parent directory of a report path exists
func checkReportParent(field, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(filepath.Clean(path))
	info, err := os.Stat(dir)
	if err != nil {
		return &InvalidOptionsError{
			Field:   field,
			Message: "parent directory does not exist: " + dir,
		}
	}
	if !info.IsDir() {
		return &InvalidOptionsError{
			Field:   field,
			Message: "parent path is not a directory: " + dir,
		}
	}

	return nil
}
