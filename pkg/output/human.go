package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/scidiff/ncdelta/pkg/models"
)

// HumanFormatter renders a comparison result for the terminal
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Write renders the result in human-readable form
func (f *HumanFormatter) Write(w io.Writer, result *models.ComparisonResult) error {
	fmt.Fprintf(w, "File A: %s\n", result.FileA.Path)
	fmt.Fprintf(w, "File B: %s\n", result.FileB.Path)
	fmt.Fprintf(w, "\n")

	WriteFileSummary(w, "File A", result.FileA)
	WriteFileSummary(w, "File B", result.FileB)

	writeDiffSection(w, "Dimensions", result.MatchingDimensions, result.NonMatchingDimensions)
	writeDiffSection(w, "Groups", result.MatchingGroups, result.NonMatchingGroups)
	writeDiffSection(w, "Variables", result.MatchingVariables, result.NonMatchingVariables)

	if len(result.AttributeDifferences) > 0 {
		fmt.Fprintf(w, "Attribute differences:\n")
		for _, d := range result.AttributeDifferences {
			fmt.Fprintf(w, "  %s:%s  a=%s  b=%s\n",
				d.EntityID, d.Attribute,
				humanAttrValue(d.ValueA, d.PresentA),
				humanAttrValue(d.ValueB, d.PresentB))
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Dimensions:  %d matching, %d non-matching\n",
		result.Counts[models.CountMatchingDimensions],
		result.Counts[models.CountNonMatchingDimensions])
	fmt.Fprintf(w, "  Groups:      %d matching, %d non-matching\n",
		result.Counts[models.CountMatchingGroups],
		result.Counts[models.CountNonMatchingGroups])
	fmt.Fprintf(w, "  Variables:   %d matching, %d non-matching\n",
		result.Counts[models.CountMatchingVariables],
		result.Counts[models.CountNonMatchingVariables])
	fmt.Fprintf(w, "  Attributes:  %d differences\n",
		result.Counts[models.CountAttributeDifferences])
	fmt.Fprintf(w, "\n")

	if result.ReportPaths.Text != "" {
		fmt.Fprintf(w, "Text report: %s\n", result.ReportPaths.Text)
	}
	if result.ReportPaths.CSV != "" {
		fmt.Fprintf(w, "CSV report:  %s\n", result.ReportPaths.CSV)
	}

	fmt.Fprintf(w, "Status: %s (%d differences)\n",
		result.Status(), result.Counts[models.CountTotalDifferences])

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// WriteFileSummary prints one file's dimension and variable tables
func WriteFileSummary(w io.Writer, label string, summary models.FileSummary) {
	fmt.Fprintf(w, "%s structure:\n", label)

	if len(summary.Dimensions) == 0 {
		fmt.Fprintf(w, "  (no dimensions)\n")
	}
	for _, d := range summary.Dimensions {
		if d.IsUnlimited() {
			fmt.Fprintf(w, "  dim %-20s unlimited\n", d.Name)
		} else {
			fmt.Fprintf(w, "  dim %-20s %d\n", d.Name, d.Length)
		}
	}

	for _, v := range summary.Variables {
		fmt.Fprintf(w, "  var %-20s %-10s (%s)  %d points\n",
			v.ID, v.DType, strings.Join(v.Shape, ", "), v.Points)
	}

	fmt.Fprintf(w, "\n")
}

func writeDiffSection(w io.Writer, title string, matching []string, nonMatching []models.EntityDiff) {
	if len(matching) == 0 && len(nonMatching) == 0 {
		return
	}

	fmt.Fprintf(w, "%s:\n", title)
	for _, id := range matching {
		fmt.Fprintf(w, "  = %s\n", id)
	}
	for _, diff := range nonMatching {
		tags := make([]string, 0, len(diff.Reasons))
		for _, r := range diff.Reasons {
			tags = append(tags, string(r))
		}
		fmt.Fprintf(w, "  ! %s [%s]\n", diff.ID, strings.Join(tags, ";"))
	}
	fmt.Fprintf(w, "\n")
}

func humanAttrValue(value string, present bool) string {
	if !present {
		return "(absent)"
	}
	return fmt.Sprintf("%q", value)
}
