// Package api defines the shared request/response contracts for all surfaces.
package api

// BillingRequest is the input for unified billing and overlap analysis.
type BillingRequest struct {
	Products []ProductWithSkills `json:"products"`
}

// RecommendationRequest is the input for complementary-product ranking.
type RecommendationRequest struct {
	Current   []ProductWithSkills `json:"current"`
	Available []ProductWithSkills `json:"available"`
}

// UsageRequest is the input for usage allowance computation.
type UsageRequest struct {
	Products             []ProductWithSkills `json:"products"`
	PlatformIntelligence bool                `json:"platform_intelligence"`
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
