// Package reconcile converts raw per-file structural facts into a
// normalized comparison result. The engine is a pure function of its
// inputs: no I/O, no external calls, deterministic output ordering.
package reconcile

import (
	"github.com/scidiff/ncdelta/pkg/models"
)

// Reconcile classifies every dimension, group, and variable appearing in
// either file as matching or non-matching, compares attributes when
// requested, and derives category counts. It fails with
// *models.MalformedInputError if either side's facts are absent or
// structurally invalid; it never returns a partial result.
func Reconcile(factsA, factsB *models.FileFacts, opts models.ComparisonOptions) (*models.ComparisonResult, error) {
	if err := factsA.Validate("A"); err != nil {
		return nil, err
	}
	if err := factsB.Validate("B"); err != nil {
		return nil, err
	}

	matchingDims, nonMatchingDims := matchDimensions(factsA.Dimensions, factsB.Dimensions)
	matchingGroups, nonMatchingGroups := matchGroups(factsA.Groups, factsB.Groups)
	matchingVars, nonMatchingVars := matchVariables(factsA.Variables, factsB.Variables, opts.IncludeChunking)

	var attrDiffs []models.AttributeDifference
	if opts.IncludeAttributes {
		attrDiffs = attributeDiffs(factsA, factsB)
	}

	result := &models.ComparisonResult{
		FileA:                 Summarize(factsA),
		FileB:                 Summarize(factsB),
		MatchingDimensions:    matchingDims,
		NonMatchingDimensions: nonMatchingDims,
		MatchingGroups:        matchingGroups,
		NonMatchingGroups:     nonMatchingGroups,
		MatchingVariables:     matchingVars,
		NonMatchingVariables:  nonMatchingVars,
		AttributeDifferences:  attrDiffs,
		Counts: deriveCounts(
			len(matchingDims), len(nonMatchingDims),
			len(matchingGroups), len(nonMatchingGroups),
			len(matchingVars), len(nonMatchingVars),
			len(attrDiffs),
		),
	}

	// Counts were derived above from the pre-filter cardinalities, so the
	// summary numbers stay meaningful when the detail lists are filtered.
	if opts.OnlyDifferences {
		result.MatchingDimensions = nil
		result.MatchingGroups = nil
		result.MatchingVariables = nil
	}

	return result, nil
}

// deriveCounts builds the counts mapping from pre-filter cardinalities
func deriveCounts(matchDims, diffDims, matchGroups, diffGroups, matchVars, diffVars, attrDiffs int) map[string]int {
	return map[string]int{
		models.CountMatchingDimensions:    matchDims,
		models.CountNonMatchingDimensions: diffDims,
		models.CountMatchingGroups:        matchGroups,
		models.CountNonMatchingGroups:     diffGroups,
		models.CountMatchingVariables:     matchVars,
		models.CountNonMatchingVariables:  diffVars,
		models.CountAttributeDifferences:  attrDiffs,
		models.CountTotalDifferences:      diffDims + diffGroups + diffVars + attrDiffs,
	}
}
