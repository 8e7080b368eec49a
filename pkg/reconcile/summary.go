package reconcile

import (
	"github.com/scidiff/ncdelta/pkg/models"
)

// Summarize builds the per-file summary view from raw facts.
// Point counts are the product of the referenced dimension lengths;
// a variable touching an unlimited or unknown dimension gets 0.
func Summarize(facts *models.FileFacts) models.FileSummary {
	dimLengths := make(map[string]int64, len(facts.Dimensions))
	for _, d := range facts.Dimensions {
		dimLengths[d.Name] = d.Length
	}

	summary := models.FileSummary{
		Path:       facts.Path,
		Dimensions: append([]models.Dimension(nil), facts.Dimensions...),
		Groups:     append([]string(nil), facts.Groups...),
	}

	for _, v := range facts.Variables {
		summary.Variables = append(summary.Variables, models.VariableInfo{
			ID:       v.ID(),
			DType:    v.DType,
			Shape:    append([]string(nil), v.Shape...),
			Chunking: append([]int64(nil), v.Chunking...),
			Points:   pointCount(v.Shape, dimLengths),
		})
	}

	return summary
}

// pointCount multiplies the lengths of the named dimensions
func pointCount(shape []string, dimLengths map[string]int64) int64 {
	count := int64(1)
	for _, name := range shape {
		length, ok := dimLengths[name]
		if !ok || length == models.UnlimitedLength {
			return 0
		}
		count *= length
	}
	return count
}
