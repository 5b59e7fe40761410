// Package api defines the shared contracts for the skill billing engine.
package api

import "github.com/shopspring/decimal"

// ProductWithSkills is a subscribable product and the skills it bundles.
// Supplied per billing request by the caller; the engine never mutates it.
type ProductWithSkills struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Skills    []string        `json:"skills"`
	BasePrice decimal.Decimal `json:"base_price"`
	Features  []string        `json:"features,omitempty"`
}

// SkillPricing is one catalog row: the canonical skill identifier,
// its display name, monthly price, and category.
type SkillPricing struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Category  string          `json:"category"`
}

// BillingBreakdownItem is one per-product line of a unified bill,
// in the same order as the request's product list.
type BillingBreakdownItem struct {
	ProductName       string          `json:"product_name"`
	BasePrice         decimal.Decimal `json:"base_price"`
	UniqueSkillsCount int             `json:"unique_skills_count"`
	SharedSkillsCount int             `json:"shared_skills_count"`
	EffectivePrice    decimal.Decimal `json:"effective_price"`
}

// UnifiedBillingResult is the consolidated monthly bill for a product
// selection. Shared skills are charged once across the whole bill.
//
// UniqueSkills holds every normalized skill seen in the request;
// SharedSkills is the subset declared by two or more products.
// Both are sorted.
type UnifiedBillingResult struct {
	TotalMonthlyPrice decimal.Decimal        `json:"total_monthly_price"`
	UniqueSkills      []string               `json:"unique_skills"`
	SharedSkills      []string               `json:"shared_skills"`
	Savings           decimal.Decimal        `json:"savings"`
	Breakdown         []BillingBreakdownItem `json:"breakdown"`
}

// OverlapResult is the pairwise skill-overlap view of a product
// selection. The matrix is keyed by product ID and holds only pairs
// (i, j) with i before j in the request order; TotalOverlap is the sum
// of intersection sizes over all pairs, so a skill shared by three
// products counts once per pair, not once per skill.
type OverlapResult struct {
	OverlapMatrix map[string]map[string][]string `json:"overlap_matrix"`
	TotalOverlap  int                            `json:"total_overlap"`
}

// Recommendation scores a candidate product by how much of it the
// customer already owns.
type Recommendation struct {
	Product           ProductWithSkills `json:"product"`
	SharedSkillsCount int               `json:"shared_skills_count"`
	PotentialSavings  decimal.Decimal   `json:"potential_savings"`
}
