package openai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is an llms.Model that replays scripted responses.
type fakeModel struct {
	responses []string
	errs      []error
	calls     int
	lastOpts  llms.CallOptions
	lastMsgs  []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	i := f.calls
	f.calls++
	f.lastMsgs = messages
	f.lastOpts = llms.CallOptions{}
	for _, opt := range options {
		opt(&f.lastOpts)
	}

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.responses) {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.responses[i]}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func newTestExtractor(model llms.Model) *InsightExtractor {
	return newInsightExtractorWithModel(model, ai.RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Retryable:   isTransient,
	})
}

const goodResponse = "```json\n" + `{
  "insights_summary": "Acme is evaluating a switch but pricing is a blocker.",
  "themes": [
    {"name": "pricing", "description": "Price is above budget",
     "evidence": [{"text": "That's double what we pay now", "speaker": "participant"}]}
  ],
  "key_quotes": [
    {"text": "We'd move tomorrow if the price was right", "speaker": "participant",
     "timestamp": "12:30", "context": "switching", "theme": "pricing"}
  ]
}` + "\n```"

func TestInsightExtractor_Success(t *testing.T) {
	model := &fakeModel{responses: []string{goodResponse}}
	e := newTestExtractor(model)

	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{
		Title:      "Acme eval",
		Notes:      "notes",
		Transcript: "[participant] That's double what we pay now",
		Model:      "gpt-4o",
	})

	assert.False(t, got.Degraded)
	assert.Equal(t, "Acme is evaluating a switch but pricing is a blocker.", got.InsightsSummary)
	require.Len(t, got.Themes, 1)
	assert.Equal(t, "pricing", got.Themes[0].Name)
	assert.Equal(t, core.SpeakerParticipant, got.Themes[0].Evidence[0].Speaker)
	require.Len(t, got.KeyQuotes, 1)
	assert.Equal(t, "12:30", got.KeyQuotes[0].Timestamp)
	assert.Equal(t, "pricing", got.KeyQuotes[0].Theme)

	assert.Equal(t, 1, model.calls)
	assert.True(t, model.lastOpts.JSONMode)
	assert.Equal(t, "gpt-4o", model.lastOpts.Model)
	assert.InDelta(t, 0.1, model.lastOpts.Temperature, 1e-9)

	require.Len(t, model.lastMsgs, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.lastMsgs[0].Role)
	human := model.lastMsgs[1].Parts[0].(llms.TextContent).Text
	assert.Contains(t, human, "Acme eval")
	assert.Contains(t, human, "That's double what we pay now")
}

func TestInsightExtractor_RetriesTransientFailures(t *testing.T) {
	rateLimited := errors.New("API returned unexpected status code: 429: rate limit")
	model := &fakeModel{
		errs:      []error{rateLimited, rateLimited, nil},
		responses: []string{"", "", goodResponse},
	}
	e := newTestExtractor(model)

	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{Title: "t"})
	assert.False(t, got.Degraded)
	assert.Equal(t, 3, model.calls)
	assert.Len(t, got.Themes, 1)
}

func TestInsightExtractor_ExhaustedRetriesDegrade(t *testing.T) {
	rateLimited := errors.New("API returned unexpected status code: 503")
	model := &fakeModel{errs: []error{rateLimited, rateLimited, rateLimited}}
	e := newTestExtractor(model)

	notes := strings.Repeat("n", 700)
	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{Notes: notes})

	assert.True(t, got.Degraded)
	assert.Equal(t, 3, model.calls)
	assert.Equal(t, notes[:500], got.InsightsSummary)
	assert.Empty(t, got.Themes)
	assert.Empty(t, got.KeyQuotes)
}

func TestInsightExtractor_NonTransientFailureDegradesImmediately(t *testing.T) {
	model := &fakeModel{errs: []error{errors.New("invalid api key")}}
	e := newTestExtractor(model)

	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{})
	assert.True(t, got.Degraded)
	assert.Equal(t, ai.FailedSummary, got.InsightsSummary)
	assert.Equal(t, 1, model.calls)
}

func TestInsightExtractor_MalformedResponseDegrades(t *testing.T) {
	model := &fakeModel{responses: []string{"I'm sorry, I can't help with that."}}
	e := newTestExtractor(model)

	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{Notes: "Short notes"})
	assert.True(t, got.Degraded)
	assert.Equal(t, "Short notes", got.InsightsSummary)
}

func TestInsightExtractor_NoChoicesDegrades(t *testing.T) {
	model := &fakeModel{}
	e := newTestExtractor(model)

	got := e.ExtractInsights(context.Background(), ai.ExtractionRequest{Notes: "n"})
	assert.True(t, got.Degraded)
	assert.Equal(t, 1, model.calls)
}

func TestBuildSystemPrompt_ListsEveryTheme(t *testing.T) {
	prompt := buildSystemPrompt()
	for _, id := range core.ThemeIDs() {
		assert.Contains(t, prompt, id)
	}
	assert.Contains(t, prompt, "[participant]")
}
