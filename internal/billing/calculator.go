// Package billing computes consolidated monthly pricing for a product
// selection whose products share reusable skills.
package billing

import (
	"sort"

	"github.com/shopspring/decimal"

	"skill-billing/internal/catalog"
	"skill-billing/internal/skill"
	"skill-billing/pkg/api"
)

// Calculator produces unified bills against an injected skill catalog.
// It holds no mutable state; one instance serves concurrent requests.
type Calculator struct {
	catalog *catalog.Catalog
	bearer  CostBearerPolicy
}

// NewCalculator creates a calculator with first-occurrence shared-cost
// attribution.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat, bearer: FirstOccurrence}
}

// WithCostBearerPolicy overrides how shared skill costs are attributed.
func (c *Calculator) WithCostBearerPolicy(p CostBearerPolicy) *Calculator {
	c.bearer = p
	return c
}

// CalculateUnifiedBilling computes the deduplicated monthly bill for a
// product selection. Each shared skill is charged exactly once, to the
// product chosen by the cost-bearer policy; savings report the gap to
// naive per-product pricing and are never negative.
func (c *Calculator) CalculateUnifiedBilling(products []api.ProductWithSkills) *api.UnifiedBillingResult {
	result := &api.UnifiedBillingResult{
		TotalMonthlyPrice: decimal.Zero,
		Savings:           decimal.Zero,
		UniqueSkills:      []string{},
		SharedSkills:      []string{},
		Breakdown:         make([]api.BillingBreakdownItem, 0, len(products)),
	}

	// Multi-map: skill -> declaring product IDs, both in request order.
	perProduct := make([][]string, len(products))
	declarers := make(map[string][]string)
	for i, p := range products {
		perProduct[i] = skill.NormalizeAll(p.Skills)
		for _, s := range perProduct[i] {
			declarers[s] = append(declarers[s], p.ID)
		}
	}

	// A skill is shared iff two or more products declare it. The bearer
	// pays its price once for the whole bill.
	shared := make(map[string]bool, len(declarers))
	bearer := make(map[string]string)
	for s, ids := range declarers {
		if len(ids) >= 2 {
			shared[s] = true
			bearer[s] = c.bearerFor(ids)
		}
	}

	naive := decimal.Zero
	for i, p := range products {
		item := api.BillingBreakdownItem{
			ProductName:    p.Name,
			BasePrice:      p.BasePrice,
			EffectivePrice: p.BasePrice,
		}
		for _, s := range perProduct[i] {
			price := c.catalog.Price(s)
			naive = naive.Add(price)
			if shared[s] {
				item.SharedSkillsCount++
				if bearer[s] == p.ID {
					item.EffectivePrice = item.EffectivePrice.Add(price)
				}
			} else {
				item.UniqueSkillsCount++
				item.EffectivePrice = item.EffectivePrice.Add(price)
			}
		}
		naive = naive.Add(p.BasePrice)
		result.TotalMonthlyPrice = result.TotalMonthlyPrice.Add(item.EffectivePrice)
		result.Breakdown = append(result.Breakdown, item)
	}
	result.Savings = naive.Sub(result.TotalMonthlyPrice)

	for s := range declarers {
		result.UniqueSkills = append(result.UniqueSkills, s)
		if shared[s] {
			result.SharedSkills = append(result.SharedSkills, s)
		}
	}
	sort.Strings(result.UniqueSkills)
	sort.Strings(result.SharedSkills)

	return result
}

// bearerFor applies the cost-bearer policy, falling back to the first
// declarer if the policy names a product that does not declare the
// skill; that would otherwise drop the charge from the bill entirely.
func (c *Calculator) bearerFor(ids []string) string {
	chosen := c.bearer(ids)
	for _, id := range ids {
		if id == chosen {
			return chosen
		}
	}
	return ids[0]
}
