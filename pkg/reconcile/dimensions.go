package reconcile

import (
	"sort"

	"github.com/scidiff/ncdelta/pkg/models"
)

// matchDimensions classifies every dimension name present in either file.
// A dimension matches only when it exists in both files with equal length;
// two unlimited dimensions compare equal regardless of current record count.
func matchDimensions(dimsA, dimsB []models.Dimension) (matching []string, nonMatching []models.EntityDiff) {
	byNameA := make(map[string]models.Dimension, len(dimsA))
	for _, d := range dimsA {
		byNameA[d.Name] = d
	}
	byNameB := make(map[string]models.Dimension, len(dimsB))
	for _, d := range dimsB {
		byNameB[d.Name] = d
	}

	for _, name := range unionKeys(byNameA, byNameB) {
		a, inA := byNameA[name]
		b, inB := byNameB[name]

		switch {
		case !inA:
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      name,
				Reasons: []models.ReasonTag{models.ReasonMissingInA},
			})
		case !inB:
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      name,
				Reasons: []models.ReasonTag{models.ReasonMissingInB},
			})
		case a.Length != b.Length:
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      name,
				Reasons: []models.ReasonTag{models.ReasonLengthMismatch},
			})
		default:
			matching = append(matching, name)
		}
	}

	return matching, nonMatching
}

// unionKeys returns the sorted union of the keys of both maps
func unionKeys[V any](a, b map[string]V) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
