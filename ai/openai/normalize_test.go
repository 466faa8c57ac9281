package openai

import (
	"testing"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsights_RepairsUntrustedOutput(t *testing.T) {
	response := `{
  "themes": [
    {"name": "pricing", "description": "d1", "evidence": [
      "legacy bare string evidence",
      {"text": "object evidence", "speaker": "HOST"},
      {"text": "   ", "speaker": "participant"},
      {"text": "bad speaker", "speaker": "customer"},
      42
    ]},
    {"name": "weather", "description": "not in registry", "evidence": ["sunny"]},
    {"name": "Feature Requests", "description": "display name", "evidence": [{"text": "need SSO"}]},
    {"name": "competition", "description": "no evidence", "evidence": []},
    {"name": "competition", "description": "only empty", "evidence": [""]},
    {"name": "pricing", "description": "duplicate", "evidence": [{"text": "again", "speaker": "host"}]},
    "not a theme object"
  ],
  "key_quotes": [
    {"text": "keep me", "speaker": "host", "timestamp": 754, "context": "ctx", "theme": "pricing"},
    {"text": "", "speaker": "host"},
    {"text": "unknown theme ref", "theme": "weather"},
    "bare quote"
  ]
}`

	got, err := parseInsights(response)
	require.NoError(t, err)

	assert.Equal(t, ai.PlaceholderSummary, got.InsightsSummary)

	require.Len(t, got.Themes, 2)
	pricing := got.Themes[0]
	assert.Equal(t, "pricing", pricing.Name)
	assert.Equal(t, "d1", pricing.Description)
	assert.Equal(t, []core.ThemeEvidence{
		{Text: "legacy bare string evidence", Speaker: core.SpeakerParticipant},
		{Text: "object evidence", Speaker: core.SpeakerHost},
		{Text: "bad speaker", Speaker: core.SpeakerParticipant},
		{Text: "42", Speaker: core.SpeakerParticipant},
		{Text: "again", Speaker: core.SpeakerHost},
	}, pricing.Evidence)

	assert.Equal(t, "feature_requests", got.Themes[1].Name)
	assert.Equal(t, core.SpeakerParticipant, got.Themes[1].Evidence[0].Speaker)

	require.Len(t, got.KeyQuotes, 3)
	assert.Equal(t, core.Quote{
		Text: "keep me", Speaker: core.SpeakerHost, Timestamp: "754", Context: "ctx", Theme: "pricing",
	}, got.KeyQuotes[0])
	assert.Equal(t, "", got.KeyQuotes[1].Theme)
	assert.Equal(t, core.SpeakerParticipant, got.KeyQuotes[1].Speaker)
	assert.Equal(t, "bare quote", got.KeyQuotes[2].Text)

	for i := range got.Themes {
		assert.NoError(t, core.ValidateTheme(&got.Themes[i]))
	}
	for i := range got.KeyQuotes {
		assert.NoError(t, core.ValidateQuote(&got.KeyQuotes[i]))
	}
}

func TestParseInsights_WrongFieldTypesAreDropped(t *testing.T) {
	got, err := parseInsights(`{"insights_summary": {"nested": true}, "themes": "pricing", "key_quotes": null}`)
	require.NoError(t, err)
	assert.Equal(t, ai.PlaceholderSummary, got.InsightsSummary)
	assert.Empty(t, got.Themes)
	assert.Empty(t, got.KeyQuotes)
}

func TestParseInsights_NotAnObject(t *testing.T) {
	_, err := parseInsights(`["a", "b"]`)
	assert.ErrorIs(t, err, errNotAnObject)

	_, err = parseInsights(`Sure! Here is the JSON you asked for`)
	assert.ErrorIs(t, err, errNotAnObject)
}

func TestParseInsights_RepairsSyntax(t *testing.T) {
	got, err := parseInsights("```json\n{\"insights_summary\": \"ok\", themes\": [], \"key_quotes\": [\"q\",],}\n```")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.InsightsSummary)
	require.Len(t, got.KeyQuotes, 1)
	assert.Equal(t, "q", got.KeyQuotes[0].Text)
}

func TestResolveThemeID(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"pricing", "pricing", true},
		{"Pricing", "pricing", true},
		{"pain points", "pain_points", true},
		{"churn-risk", "churn_risk", true},
		{"Security & Compliance", "security_compliance", true},
		{"", "", false},
		{"weather", "", false},
	}
	for _, tt := range tests {
		got, ok := resolveThemeID(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
