package models

// GlobalEntityID identifies the file-level (global) attribute entity
const GlobalEntityID = "<global>"

// ReasonTag explains why an entity was classified as non-matching
type ReasonTag string

const (
	// ReasonMissingInA indicates the entity is absent from file A
	ReasonMissingInA ReasonTag = "missing_in_a"
	// ReasonMissingInB indicates the entity is absent from file B
	ReasonMissingInB ReasonTag = "missing_in_b"
	// ReasonLengthMismatch indicates a dimension exists in both files with different lengths
	ReasonLengthMismatch ReasonTag = "length_mismatch"
	// ReasonDTypeMismatch indicates a variable's data types differ
	ReasonDTypeMismatch ReasonTag = "dtype_mismatch"
	// ReasonShapeMismatch indicates a variable's dimension lists differ
	ReasonShapeMismatch ReasonTag = "shape_mismatch"
	// ReasonChunkingMismatch indicates a variable's chunk layouts differ
	ReasonChunkingMismatch ReasonTag = "chunking_mismatch"
	// ReasonValueMismatch indicates an attribute exists in both files with different values
	ReasonValueMismatch ReasonTag = "value_mismatch"
)

// Count category keys used in ComparisonResult.Counts
const (
	CountMatchingDimensions    = "matching_dimensions_count"
	CountNonMatchingDimensions = "non_matching_dimensions_count"
	CountMatchingGroups        = "matching_groups_count"
	CountNonMatchingGroups     = "non_matching_groups_count"
	CountMatchingVariables     = "matching_variables_count"
	CountNonMatchingVariables  = "non_matching_variables_count"
	CountAttributeDifferences  = "attribute_differences_count"
	CountTotalDifferences      = "total_differences"
)

// EntityDiff is a non-matching entity with the reasons it failed to match.
// Multiple reasons may apply simultaneously; all applicable ones are recorded.
type EntityDiff struct {
	// ID is the entity identifier (dimension name, group path, or variable id)
	ID string

	// Reasons are the applicable reason tags, in check order
	Reasons []ReasonTag
}

// AttributeDifference records one attribute that differs between the files
type AttributeDifference struct {
	// EntityID is the owning entity (GlobalEntityID or a variable id)
	EntityID string

	// Attribute is the attribute name
	Attribute string

	// ValueA and ValueB are the canonical values on each side; empty when
	// the corresponding Present flag is false
	ValueA string
	ValueB string

	// PresentA and PresentB report whether the attribute exists on each side
	PresentA bool
	PresentB bool
}

// Reason returns the reason tag for this attribute difference
func (d AttributeDifference) Reason() ReasonTag {
	switch {
	case !d.PresentA:
		return ReasonMissingInA
	case !d.PresentB:
		return ReasonMissingInB
	default:
		return ReasonValueMismatch
	}
}

// VariableInfo is the per-file summary view of one variable
type VariableInfo struct {
	// ID is the full variable identifier (group path + name)
	ID string

	// DType is the declared data type
	DType string

	// Shape is the ordered list of dimension names
	Shape []string

	// Chunking is the chunk size per dimension, nil if contiguous or unknown
	Chunking []int64

	// Points is the product of the referenced dimension lengths;
	// 0 when any referenced dimension is unlimited or unknown
	Points int64
}

// FileSummary is the per-file structural summary embedded in a result
type FileSummary struct {
	Path       string
	Dimensions []Dimension
	Variables  []VariableInfo
	Groups     []string
}

// ReportPaths holds the paths of report files that were actually written
type ReportPaths struct {
	Text string
	CSV  string
}

// CompareStatus is the overall outcome of a comparison
type CompareStatus string

const (
	// StatusMatch indicates the files are structurally identical
	StatusMatch CompareStatus = "match"
	// StatusDifferent indicates structural differences were found
	StatusDifferent CompareStatus = "different"
)

// ExitCode returns the process exit code for the comparison status
func (s CompareStatus) ExitCode() int {
	if s == StatusMatch {
		return 0
	}
	return 1
}

// ComparisonResult is the normalized, queryable outcome of reconciling the
// structural facts of two files. It is immutable once returned: no partial
// or streaming mutation is visible to callers.
type ComparisonResult struct {
	// RunID uniquely identifies the comparison run (empty for bare
	// engine invocations; assigned by the runner)
	RunID string

	// FileA and FileB are the per-file structural summaries
	FileA FileSummary
	FileB FileSummary

	// MatchingDimensions and NonMatchingDimensions partition the union of
	// dimension names across both files; likewise for groups and variables.
	// Matching lists are empty when OnlyDifferences was set, but counts
	// still reflect the pre-filter numbers.
	MatchingDimensions    []string
	NonMatchingDimensions []EntityDiff

	MatchingGroups    []string
	NonMatchingGroups []EntityDiff

	MatchingVariables    []string
	NonMatchingVariables []EntityDiff

	// AttributeDifferences is populated only when IncludeAttributes was set
	AttributeDifferences []AttributeDifference

	// Counts maps category names to pre-filter cardinalities; derived by
	// the engine, never independently settable
	Counts map[string]int

	// ReportPaths is populated only for reports that were actually written
	ReportPaths ReportPaths
}

// HasDifferences reports whether any non-matching entity or attribute
// difference was found
func (r *ComparisonResult) HasDifferences() bool {
	return r.Counts[CountTotalDifferences] > 0
}

// Status returns the overall comparison status
func (r *ComparisonResult) Status() CompareStatus {
	if r.HasDifferences() {
		return StatusDifferent
	}
	return StatusMatch
}
