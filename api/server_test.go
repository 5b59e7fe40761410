package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-billing/internal/catalog"
	contracts "skill-billing/pkg/api"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(catalog.Default(), nil, DefaultConfig())
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestBillingEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/billing", contracts.BillingRequest{
		Products: []contracts.ProductWithSkills{
			{ID: "chatbot", Name: "Chatbot", BasePrice: decimal.NewFromInt(49),
				Skills: []string{"email_integration", "crm_sync"}},
			{ID: "sales_agent", Name: "Sales Agent", BasePrice: decimal.NewFromInt(99),
				Skills: []string{"email_integration", "lead_scoring"}},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.QuoteID)
	require.NotNil(t, resp.Billing)
	assert.Equal(t, []string{"email_integration"}, resp.Billing.SharedSkills)
	assert.True(t, resp.Billing.Savings.Equal(decimal.NewFromInt(15)))
}

func TestBillingRejectsBadJSON(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBillingRejectsGet(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOverlapEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/overlap", contracts.BillingRequest{
		Products: []contracts.ProductWithSkills{
			{ID: "a", Skills: []string{"email_integration"}},
			{ID: "b", Skills: []string{"email_integration"}},
			{ID: "c", Skills: []string{"email_integration"}},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp contracts.OverlapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalOverlap)
}

func TestRecommendationsEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/recommendations", contracts.RecommendationRequest{
		Current: []contracts.ProductWithSkills{
			{ID: "chatbot", Skills: []string{"email_integration"}},
		},
		Available: []contracts.ProductWithSkills{
			{ID: "match", Skills: []string{"email_integration"}},
			{ID: "nomatch", Skills: []string{"web_scraping"}},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RecommendationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "match", resp.Recommendations[0].Product.ID)
}

func TestUsageEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/usage", contracts.UsageRequest{
		Products: []contracts.ProductWithSkills{
			{ID: "chatbot", Skills: []string{"email_integration", "crm_sync"}},
		},
		PlatformIntelligence: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp contracts.UsageBasedBilling
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3_060_000), resp.MonthlyTokenAllocation)
	assert.Equal(t, int64(3_000), resp.IncludedAPICalls)
}

func TestCatalogEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Skills)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/billing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
