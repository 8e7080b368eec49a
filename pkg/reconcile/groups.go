package reconcile

import (
	"github.com/scidiff/ncdelta/pkg/models"
)

// matchGroups compares hierarchical group paths by string equality.
// A group matches only if the same path exists in both files; the groups'
// variable-level content is compared independently.
func matchGroups(groupsA, groupsB []string) (matching []string, nonMatching []models.EntityDiff) {
	inA := make(map[string]struct{}, len(groupsA))
	for _, g := range groupsA {
		inA[g] = struct{}{}
	}
	inB := make(map[string]struct{}, len(groupsB))
	for _, g := range groupsB {
		inB[g] = struct{}{}
	}

	for _, path := range unionKeys(inA, inB) {
		_, okA := inA[path]
		_, okB := inB[path]

		switch {
		case !okA:
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      path,
				Reasons: []models.ReasonTag{models.ReasonMissingInA},
			})
		case !okB:
			nonMatching = append(nonMatching, models.EntityDiff{
				ID:      path,
				Reasons: []models.ReasonTag{models.ReasonMissingInB},
			})
		default:
			matching = append(matching, path)
		}
	}

	return matching, nonMatching
}
