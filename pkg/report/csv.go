package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/scidiff/ncdelta/pkg/models"
)

// Categories used in the CSV category column
const (
	categoryDimension = "dimension"
	categoryGroup     = "group"
	categoryVariable  = "variable"
	categoryAttribute = "attribute"
)

// WriteCSV writes a machine-readable report with header
// "category,entity_id,status,reason_tags", one row per entity; multiple
// reason tags are joined by ";". Attribute rows use "<entity>:<attribute>"
// as the entity id. Same atomicity guarantee as the text writer.
func WriteCSV(result *models.ComparisonResult, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		return renderCSV(result, w)
	})
}

func renderCSV(result *models.ComparisonResult, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"category", "entity_id", "status", "reason_tags"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	writeRows := func(category string, matching []string, nonMatching []models.EntityDiff) {
		for _, id := range matching {
			cw.Write([]string{category, id, "matching", ""})
		}
		for _, diff := range nonMatching {
			cw.Write([]string{category, diff.ID, "non-matching", reasonString(diff.Reasons)})
		}
	}

	writeRows(categoryDimension, result.MatchingDimensions, result.NonMatchingDimensions)
	writeRows(categoryGroup, result.MatchingGroups, result.NonMatchingGroups)
	writeRows(categoryVariable, result.MatchingVariables, result.NonMatchingVariables)

	for _, d := range result.AttributeDifferences {
		cw.Write([]string{
			categoryAttribute,
			d.EntityID + ":" + d.Attribute,
			"non-matching",
			string(d.Reason()),
		})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}

	return nil
}
