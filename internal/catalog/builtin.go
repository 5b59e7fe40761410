package catalog

import (
	"github.com/shopspring/decimal"

	"skill-billing/pkg/api"
)

// builtinSkills is the platform's standard skill table. Prices are
// monthly, in currency units.
var builtinSkills = []api.SkillPricing{
	{ID: "email_integration", Name: "Email Integration", BasePrice: decimal.NewFromInt(15), Category: "integration"},
	{ID: "crm_sync", Name: "CRM Sync", BasePrice: decimal.NewFromInt(20), Category: "integration"},
	{ID: "slack_integration", Name: "Slack Integration", BasePrice: decimal.NewFromInt(10), Category: "integration"},
	{ID: "calendar_booking", Name: "Calendar Booking", BasePrice: decimal.NewFromInt(12), Category: "scheduling"},
	{ID: "lead_scoring", Name: "Lead Scoring", BasePrice: decimal.NewFromInt(25), Category: "intelligence"},
	{ID: "sentiment_analysis", Name: "Sentiment Analysis", BasePrice: decimal.NewFromInt(18), Category: "intelligence"},
	{ID: "intent_detection", Name: "Intent Detection", BasePrice: decimal.NewFromInt(22), Category: "intelligence"},
	{ID: "ticket_routing", Name: "Ticket Routing", BasePrice: decimal.NewFromInt(15), Category: "support"},
	{ID: "knowledge_base_search", Name: "Knowledge Base Search", BasePrice: decimal.NewFromInt(22), Category: "support"},
	{ID: "voice_transcription", Name: "Voice Transcription", BasePrice: decimal.NewFromInt(20), Category: "communication"},
	{ID: "sms_notifications", Name: "SMS Notifications", BasePrice: decimal.NewFromInt(8), Category: "communication"},
	{ID: "language_translation", Name: "Language Translation", BasePrice: decimal.NewFromInt(18), Category: "communication"},
	{ID: "web_scraping", Name: "Web Scraping", BasePrice: decimal.NewFromInt(14), Category: "data"},
	{ID: "data_enrichment", Name: "Data Enrichment", BasePrice: decimal.NewFromInt(16), Category: "data"},
	{ID: "report_generation", Name: "Report Generation", BasePrice: decimal.NewFromInt(12), Category: "analytics"},
	{ID: "invoice_generation", Name: "Invoice Generation", BasePrice: decimal.NewFromInt(25), Category: "commerce"},
}
