package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/scidiff/ncdelta/pkg/models"
)

// WriteText writes a human-readable report: one section per category,
// each line "<status> <entity_id> [reason_tags]". The result is never
// mutated. Fails with *models.IOWriteError, leaving no partial file.
func WriteText(result *models.ComparisonResult, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		return renderText(result, w)
	})
}

func renderText(result *models.ComparisonResult, w io.Writer) error {
	fmt.Fprintf(w, "Structural Comparison Report\n")
	fmt.Fprintf(w, "============================\n\n")
	if result.RunID != "" {
		fmt.Fprintf(w, "Run:    %s\n", result.RunID)
	}
	fmt.Fprintf(w, "File A: %s\n", result.FileA.Path)
	fmt.Fprintf(w, "File B: %s\n", result.FileB.Path)
	fmt.Fprintf(w, "Status: %s\n\n", result.Status())

	writeSection(w, "Dimensions", result.MatchingDimensions, result.NonMatchingDimensions)
	writeSection(w, "Groups", result.MatchingGroups, result.NonMatchingGroups)
	writeSection(w, "Variables", result.MatchingVariables, result.NonMatchingVariables)
	writeAttributeSection(w, result.AttributeDifferences)

	fmt.Fprintf(w, "Counts\n")
	fmt.Fprintf(w, "------\n")
	for _, key := range countOrder {
		if n, ok := result.Counts[key]; ok {
			fmt.Fprintf(w, "%-32s %d\n", key, n)
		}
	}

	return nil
}

// countOrder fixes the rendering order of the counts section
var countOrder = []string{
	models.CountMatchingDimensions,
	models.CountNonMatchingDimensions,
	models.CountMatchingGroups,
	models.CountNonMatchingGroups,
	models.CountMatchingVariables,
	models.CountNonMatchingVariables,
	models.CountAttributeDifferences,
	models.CountTotalDifferences,
}

func writeSection(w io.Writer, title string, matching []string, nonMatching []models.EntityDiff) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))

	if len(matching) == 0 && len(nonMatching) == 0 {
		fmt.Fprintf(w, "(none)\n\n")
		return
	}

	for _, id := range matching {
		fmt.Fprintf(w, "matching %s\n", id)
	}
	for _, diff := range nonMatching {
		fmt.Fprintf(w, "non-matching %s [%s]\n", diff.ID, reasonString(diff.Reasons))
	}
	fmt.Fprintf(w, "\n")
}

func writeAttributeSection(w io.Writer, diffs []models.AttributeDifference) {
	fmt.Fprintf(w, "Attributes\n")
	fmt.Fprintf(w, "----------\n")

	if len(diffs) == 0 {
		fmt.Fprintf(w, "(none)\n\n")
		return
	}

	for _, d := range diffs {
		fmt.Fprintf(w, "non-matching %s:%s [%s] a=%s b=%s\n",
			d.EntityID, d.Attribute, d.Reason(),
			attrValue(d.ValueA, d.PresentA), attrValue(d.ValueB, d.PresentB))
	}
	fmt.Fprintf(w, "\n")
}

// attrValue renders an attribute value, distinguishing absence from empty
func attrValue(value string, present bool) string {
	if !present {
		return "(absent)"
	}
	return fmt.Sprintf("%q", value)
}
