// Package catalog provides the static skill pricing reference table.
//
// The catalog is built once and read-only afterwards, so a single
// instance is safe to share across concurrent billing calls.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"skill-billing/internal/skill"
	"skill-billing/pkg/api"
)

// DefaultUnknownSkillPrice is the flat monthly charge for a skill that
// is not in the catalog. Billing degrades to this instead of failing on
// an unrecognized skill.
var DefaultUnknownSkillPrice = decimal.NewFromInt(10)

// Catalog is an immutable skill pricing table.
type Catalog struct {
	entries map[string]api.SkillPricing
}

// New builds a catalog from pricing entries. Entry IDs are normalized
// on the way in so stored identifiers and lookups always agree; a later
// entry with the same normalized ID wins.
func New(entries []api.SkillPricing) *Catalog {
	c := &Catalog{entries: make(map[string]api.SkillPricing, len(entries))}
	for _, e := range entries {
		e.ID = skill.Normalize(e.ID)
		if e.ID == "" {
			continue
		}
		c.entries[e.ID] = e
	}
	return c
}

// Default returns the built-in platform skill table.
func Default() *Catalog {
	return New(builtinSkills)
}

// Lookup returns the pricing entry for a skill, reporting whether the
// catalog actually knows it.
func (c *Catalog) Lookup(id string) (api.SkillPricing, bool) {
	e, ok := c.entries[skill.Normalize(id)]
	return e, ok
}

// Price returns the catalog price for a skill, falling back to
// DefaultUnknownSkillPrice when the skill is not in the table.
func (c *Catalog) Price(id string) decimal.Decimal {
	if e, ok := c.Lookup(id); ok {
		return e.BasePrice
	}
	return DefaultUnknownSkillPrice
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all catalog rows, sorted by skill ID.
func (c *Catalog) Entries() []api.SkillPricing {
	out := make([]api.SkillPricing, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
