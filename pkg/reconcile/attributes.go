package reconcile

import (
	"sort"

	"github.com/scidiff/ncdelta/pkg/models"
)

// attributeDiffs compares attribute mappings key-by-key for every entity
// that exists in both files: the global entity first, then variables
// present in both files in identifier order. A key present in only one
// file, or present in both with different values, yields a difference
// entry; equal-value keys are not recorded.
func attributeDiffs(factsA, factsB *models.FileFacts) []models.AttributeDifference {
	diffs := entityAttrDiffs(models.GlobalEntityID, factsA.Attributes, factsB.Attributes)

	byIDA := make(map[string]models.VariableFacts, len(factsA.Variables))
	for _, v := range factsA.Variables {
		byIDA[v.ID()] = v
	}
	byIDB := make(map[string]models.VariableFacts, len(factsB.Variables))
	for _, v := range factsB.Variables {
		byIDB[v.ID()] = v
	}

	shared := make([]string, 0, len(byIDA))
	for id := range byIDA {
		if _, ok := byIDB[id]; ok {
			shared = append(shared, id)
		}
	}
	sort.Strings(shared)

	for _, id := range shared {
		diffs = append(diffs, entityAttrDiffs(id, byIDA[id].Attributes, byIDB[id].Attributes)...)
	}

	return diffs
}

// entityAttrDiffs compares one entity's attribute mappings. Keys are
// visited in file A's order, then B-only keys in file B's order.
func entityAttrDiffs(entityID string, attrsA, attrsB []models.Attribute) []models.AttributeDifference {
	valuesA := make(map[string]string, len(attrsA))
	for _, a := range attrsA {
		valuesA[a.Name] = a.Value
	}
	valuesB := make(map[string]string, len(attrsB))
	for _, b := range attrsB {
		valuesB[b.Name] = b.Value
	}

	var diffs []models.AttributeDifference
	for _, a := range attrsA {
		valueB, inB := valuesB[a.Name]
		if inB && valueB == a.Value {
			continue
		}
		diffs = append(diffs, models.AttributeDifference{
			EntityID:  entityID,
			Attribute: a.Name,
			ValueA:    a.Value,
			ValueB:    valueB,
			PresentA:  true,
			PresentB:  inB,
		})
	}
	for _, b := range attrsB {
		if _, inA := valuesA[b.Name]; inA {
			continue
		}
		diffs = append(diffs, models.AttributeDifference{
			EntityID:  entityID,
			Attribute: b.Name,
			ValueB:    b.Value,
			PresentB:  true,
		})
	}

	return diffs
}
