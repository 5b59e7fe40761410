// Package recommend ranks candidate products by how much they reuse
// skills the customer already pays for.
package recommend

import (
	"sort"

	"github.com/shopspring/decimal"

	"skill-billing/internal/catalog"
	"skill-billing/internal/skill"
	"skill-billing/pkg/api"
)

// Engine scores candidates against the injected skill catalog.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Complementary ranks available products by potential savings: the
// summed catalog price of their skills already present in the current
// selection. Candidates that share no skill are excluded; ties keep
// their relative input order. Neither input slice is mutated.
func (e *Engine) Complementary(current, available []api.ProductWithSkills) []api.Recommendation {
	owned := make(map[string]struct{})
	for _, p := range current {
		for _, s := range skill.NormalizeAll(p.Skills) {
			owned[s] = struct{}{}
		}
	}

	recs := make([]api.Recommendation, 0, len(available))
	for _, candidate := range available {
		count := 0
		savings := decimal.Zero
		for _, s := range skill.NormalizeAll(candidate.Skills) {
			if _, ok := owned[s]; !ok {
				continue
			}
			count++
			savings = savings.Add(e.catalog.Price(s))
		}
		if count == 0 {
			continue
		}
		recs = append(recs, api.Recommendation{
			Product:           candidate,
			SharedSkillsCount: count,
			PotentialSavings:  savings,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].PotentialSavings.GreaterThan(recs[j].PotentialSavings)
	})
	return recs
}
