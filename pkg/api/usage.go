// Package api defines usage allowance types.
package api

import "github.com/shopspring/decimal"

// UsageBasedBilling is the included monthly usage budget for a product
// selection. The per-unit prices are overage rates applied by the
// downstream billing collaborator; they are fixed, never computed.
type UsageBasedBilling struct {
	MonthlyTokenAllocation   int64           `json:"monthly_token_allocation"`
	PricePerMillionTokens    decimal.Decimal `json:"price_per_million_tokens"`
	IncludedAPICalls         int64           `json:"included_api_calls"`
	PricePerThousandAPICalls decimal.Decimal `json:"price_per_thousand_api_calls"`
}
