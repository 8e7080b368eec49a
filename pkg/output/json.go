package output

import (
	"encoding/json"
	"io"

	"github.com/scidiff/ncdelta/pkg/models"
)

// JSONFormatter renders a comparison result as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONResult is the serialized shape of a comparison result
type JSONResult struct {
	RunID                 string                    `json:"run_id,omitempty"`
	Status                string                    `json:"status"`
	FileA                 JSONFileSummary           `json:"file_a"`
	FileB                 JSONFileSummary           `json:"file_b"`
	MatchingDimensions    []string                  `json:"matching_dimensions,omitempty"`
	NonMatchingDimensions []JSONEntityDiff          `json:"non_matching_dimensions,omitempty"`
	MatchingGroups        []string                  `json:"matching_groups,omitempty"`
	NonMatchingGroups     []JSONEntityDiff          `json:"non_matching_groups,omitempty"`
	MatchingVariables     []string                  `json:"matching_variables,omitempty"`
	NonMatchingVariables  []JSONEntityDiff          `json:"non_matching_variables,omitempty"`
	AttributeDifferences  []JSONAttributeDifference `json:"attribute_differences,omitempty"`
	Counts                map[string]int            `json:"counts"`
	ReportText            string                    `json:"report_text,omitempty"`
	ReportCSV             string                    `json:"report_csv,omitempty"`
}

// JSONFileSummary is the serialized per-file structure
type JSONFileSummary struct {
	Path       string         `json:"path"`
	Dimensions []JSONDim      `json:"dimensions,omitempty"`
	Variables  []JSONVariable `json:"variables,omitempty"`
	Groups     []string       `json:"groups,omitempty"`
}

// JSONDim is a serialized dimension
type JSONDim struct {
	Name      string `json:"name"`
	Length    int64  `json:"length,omitempty"`
	Unlimited bool   `json:"unlimited,omitempty"`
}

// JSONVariable is a serialized variable summary
type JSONVariable struct {
	ID       string   `json:"id"`
	DType    string   `json:"dtype"`
	Shape    []string `json:"shape,omitempty"`
	Chunking []int64  `json:"chunking,omitempty"`
	Points   int64    `json:"points"`
}

// JSONEntityDiff is a serialized non-matching entity
type JSONEntityDiff struct {
	ID      string   `json:"id"`
	Reasons []string `json:"reasons"`
}

// JSONAttributeDifference is a serialized attribute difference
type JSONAttributeDifference struct {
	EntityID  string `json:"entity_id"`
	Attribute string `json:"attribute"`
	ValueA    string `json:"value_a,omitempty"`
	ValueB    string `json:"value_b,omitempty"`
	PresentA  bool   `json:"present_a"`
	PresentB  bool   `json:"present_b"`
	Reason    string `json:"reason"`
}

// Write renders the result as indented JSON
func (f *JSONFormatter) Write(w io.Writer, result *models.ComparisonResult) error {
	out := JSONResult{
		RunID:                 result.RunID,
		Status:                string(result.Status()),
		FileA:                 toJSONFileSummary(result.FileA),
		FileB:                 toJSONFileSummary(result.FileB),
		MatchingDimensions:    result.MatchingDimensions,
		NonMatchingDimensions: toJSONEntityDiffs(result.NonMatchingDimensions),
		MatchingGroups:        result.MatchingGroups,
		NonMatchingGroups:     toJSONEntityDiffs(result.NonMatchingGroups),
		MatchingVariables:     result.MatchingVariables,
		NonMatchingVariables:  toJSONEntityDiffs(result.NonMatchingVariables),
		Counts:                result.Counts,
		ReportText:            result.ReportPaths.Text,
		ReportCSV:             result.ReportPaths.CSV,
	}

	for _, d := range result.AttributeDifferences {
		out.AttributeDifferences = append(out.AttributeDifferences, JSONAttributeDifference{
			EntityID:  d.EntityID,
			Attribute: d.Attribute,
			ValueA:    d.ValueA,
			ValueB:    d.ValueB,
			PresentA:  d.PresentA,
			PresentB:  d.PresentB,
			Reason:    string(d.Reason()),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func toJSONFileSummary(summary models.FileSummary) JSONFileSummary {
	out := JSONFileSummary{
		Path:   summary.Path,
		Groups: summary.Groups,
	}
	for _, d := range summary.Dimensions {
		jd := JSONDim{Name: d.Name}
		if d.IsUnlimited() {
			jd.Unlimited = true
		} else {
			jd.Length = d.Length
		}
		out.Dimensions = append(out.Dimensions, jd)
	}
	for _, v := range summary.Variables {
		out.Variables = append(out.Variables, JSONVariable{
			ID:       v.ID,
			DType:    v.DType,
			Shape:    v.Shape,
			Chunking: v.Chunking,
			Points:   v.Points,
		})
	}
	return out
}

func toJSONEntityDiffs(diffs []models.EntityDiff) []JSONEntityDiff {
	out := make([]JSONEntityDiff, 0, len(diffs))
	for _, d := range diffs {
		reasons := make([]string, 0, len(d.Reasons))
		for _, r := range d.Reasons {
			reasons = append(reasons, string(r))
		}
		out = append(out, JSONEntityDiff{ID: d.ID, Reasons: reasons})
	}
	return out
}
