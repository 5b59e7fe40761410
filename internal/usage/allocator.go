// Package usage computes included token and API-call allowances for a
// product selection.
package usage

import (
	"github.com/shopspring/decimal"

	"skill-billing/internal/skill"
	"skill-billing/pkg/api"
)

const (
	// DefaultTokenAllocation is the monthly token budget for product
	// types not in the allocation table.
	DefaultTokenAllocation int64 = 1_000_000

	// APICallsPerSkill is the included monthly API-call allowance
	// accrued per declared skill per product.
	APICallsPerSkill int64 = 1_000
)

// Fixed overage rates, in currency units. Applied downstream; never
// computed here.
var (
	PricePerMillionTokens    = decimal.NewFromInt(15)
	PricePerThousandAPICalls = decimal.NewFromInt(2)
)

// Allocator computes usage budgets from a fixed per-product-type token
// table. Read-only after construction.
type Allocator struct {
	baseTokens map[string]int64
}

// NewAllocator creates an allocator with the platform's standard
// product-type allocations.
func NewAllocator() *Allocator {
	return &Allocator{
		baseTokens: map[string]int64{
			"chatbot":         2_000_000,
			"support_agent":   3_000_000,
			"marketing_agent": 4_000_000,
			"sales_agent":     5_000_000,
			"workflow_agent":  6_000_000,
			"analytics_agent": 8_000_000,
		},
	}
}

// UsageBasedPricing computes the aggregate monthly usage budget.
//
// Per product: the base allocation for its type plus an efficiency
// bonus of 10% of the base per ten declared skills, floored. The bonus
// has no upper bound beyond the product's own skill count. API calls
// accrue at APICallsPerSkill per declared skill. With
// platformIntelligence both aggregates are multiplied by 1.5 and
// floored.
func (a *Allocator) UsageBasedPricing(products []api.ProductWithSkills, platformIntelligence bool) api.UsageBasedBilling {
	var tokens, calls int64
	for _, p := range products {
		base := a.baseAllocation(p.ID)
		skillCount := int64(len(skill.NormalizeAll(p.Skills)))
		// floor(base * 0.1 * skillCount/10) in exact integer form
		tokens += base + base*skillCount/100
		calls += skillCount * APICallsPerSkill
	}

	if platformIntelligence {
		tokens = tokens * 3 / 2
		calls = calls * 3 / 2
	}

	return api.UsageBasedBilling{
		MonthlyTokenAllocation:   tokens,
		PricePerMillionTokens:    PricePerMillionTokens,
		IncludedAPICalls:         calls,
		PricePerThousandAPICalls: PricePerThousandAPICalls,
	}
}

func (a *Allocator) baseAllocation(productID string) int64 {
	if base, ok := a.baseTokens[skill.Normalize(productID)]; ok {
		return base
	}
	return DefaultTokenAllocation
}
