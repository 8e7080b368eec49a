package reconcile

import (
	"github.com/scidiff/ncdelta/pkg/models"
)

// matchVariables classifies every variable identifier (group path + name)
// present in either file. A variable matches only when it exists in both
// files with equal dtype and shape, and equal chunk layout when
// checkChunking is set. All applicable reason tags are recorded.
func matchVariables(varsA, varsB []models.VariableFacts, checkChunking bool) (matching []string, nonMatching []models.EntityDiff) {
	byIDA := make(map[string]models.VariableFacts, len(varsA))
	for _, v := range varsA {
		byIDA[v.ID()] = v
	}
	byIDB := make(map[string]models.VariableFacts, len(varsB))
	for _, v := range varsB {
		byIDB[v.ID()] = v
	}

	for _, id := range unionKeys(byIDA, byIDB) {
		a, inA := byIDA[id]
		b, inB := byIDB[id]

		if !inA {
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      id,
				Reasons: []models.ReasonTag{models.ReasonMissingInA},
			})
			continue
		}
		if !inB {
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      id,
				Reasons: []models.ReasonTag{models.ReasonMissingInB},
			})
			continue
		}

		var reasons []models.ReasonTag
		if a.DType != b.DType {
			reasons = append(reasons, models.ReasonDTypeMismatch)
		}
		if !equalShapes(a.Shape, b.Shape) {
			reasons = append(reasons, models.ReasonShapeMismatch)
		}
		if checkChunking && !equalChunking(a.Chunking, b.Chunking) {
			reasons = append(reasons, models.ReasonChunkingMismatch)
		}

		if len(reasons) > 0 {
			nonMatching = append(nonMatching, models.EntityDiff{ID: id, Reasons: reasons})
		} else {
			matching = append(matching, id)
		}
	}

	return matching, nonMatching
}

// equalShapes compares ordered dimension-name lists
func equalShapes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalChunking compares chunk layouts; contiguous (nil) only equals contiguous
func equalChunking(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	if (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
