// Package overlap reports pairwise skill intersections across a
// product selection.
package overlap

import (
	"skill-billing/internal/skill"
	"skill-billing/pkg/api"
)

// SkillOverlap computes the skill intersection of every unordered
// product pair, enumerated with the first product of the pair earlier
// in the request; the matrix never holds both [A][B] and [B][A].
//
// TotalOverlap sums intersection sizes over all pairs. It scores
// pairwise density, so a skill shared by three products contributes to
// all three of their pairings.
func SkillOverlap(products []api.ProductWithSkills) *api.OverlapResult {
	result := &api.OverlapResult{
		OverlapMatrix: make(map[string]map[string][]string),
	}

	ordered := make([][]string, len(products))
	sets := make([]map[string]struct{}, len(products))
	for i, p := range products {
		ordered[i] = skill.NormalizeAll(p.Skills)
		sets[i] = make(map[string]struct{}, len(ordered[i]))
		for _, s := range ordered[i] {
			sets[i][s] = struct{}{}
		}
	}

	for i := range products {
		for j := i + 1; j < len(products); j++ {
			var common []string
			for _, s := range ordered[i] {
				if _, ok := sets[j][s]; ok {
					common = append(common, s)
				}
			}
			if len(common) == 0 {
				continue
			}
			row := result.OverlapMatrix[products[i].ID]
			if row == nil {
				row = make(map[string][]string)
				result.OverlapMatrix[products[i].ID] = row
			}
			row[products[j].ID] = common
			result.TotalOverlap += len(common)
		}
	}

	return result
}
