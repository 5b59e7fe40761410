package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "email_integration", "email_integration"},
		{"mixed case", "Email Integration", "email_integration"},
		{"whitespace run", "Lead   Scoring", "lead_scoring"},
		{"tabs and newlines", "crm\t\nsync", "crm_sync"},
		{"single word", "Transcription", "transcription"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Email Integration", "  padded  name  ", "CRM Sync", "a  b   c"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"Email Integration", "email_integration", "CRM Sync", "", "crm sync"})
	assert.Equal(t, []string{"email_integration", "crm_sync"}, got)
}

func TestNormalizeAllEmpty(t *testing.T) {
	assert.Empty(t, NormalizeAll(nil))
	assert.Empty(t, NormalizeAll([]string{""}))
}
