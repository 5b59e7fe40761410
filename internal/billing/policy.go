package billing

// CostBearerPolicy selects which product pays for a shared skill. It
// receives the IDs of every product declaring the skill, in request
// order, and returns the paying product's ID.
type CostBearerPolicy func(bearers []string) string

// FirstOccurrence charges a shared skill to the product that appears
// first in the billing request among those declaring it. The charge is
// order-dependent: callers must supply a stable product ordering to get
// reproducible bills.
func FirstOccurrence(bearers []string) string {
	return bearers[0]
}

// LowestProductID charges a shared skill to the declaring product with
// the lexicographically lowest ID, making the attribution independent
// of request order.
func LowestProductID(bearers []string) string {
	best := bearers[0]
	for _, id := range bearers[1:] {
		if id < best {
			best = id
		}
	}
	return best
}
