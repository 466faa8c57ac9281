package ai

import (
	"strings"

	"github.com/poiesic/minutes/core"
)

const (
	// NotesSummaryLimit is the number of runes of notes used when no
	// model-written summary is available.
	NotesSummaryLimit = 500

	// PlaceholderSummary stands in for a missing model summary.
	PlaceholderSummary = "No summary available."

	// FailedSummary marks a meeting whose extraction failed and had no notes.
	FailedSummary = "Insight extraction failed."
)

// ExtractionRequest is the input to InsightExtractor.
type ExtractionRequest struct {
	Title      string
	Notes      string
	Transcript string
	// Model overrides the configured extraction model when non-empty.
	Model string
}

// Insights is the validated result of insight extraction.
type Insights struct {
	InsightsSummary string
	Themes          []core.Theme
	KeyQuotes       []core.Quote
	// Degraded is set when the summary was derived from the notes because
	// extraction failed.
	Degraded bool
}

// DegradedInsights builds the fallback result used when extraction fails.
func DegradedInsights(notes string) Insights {
	summary := TruncateRunes(strings.TrimSpace(notes), NotesSummaryLimit)
	if summary == "" {
		summary = FailedSummary
	}
	return Insights{
		InsightsSummary: summary,
		Themes:          []core.Theme{},
		KeyQuotes:       []core.Quote{},
		Degraded:        true,
	}
}

// NotesInsights builds the result used when extraction is skipped: the
// first NotesSummaryLimit runes of the notes and nothing else.
func NotesInsights(notes string) Insights {
	return Insights{
		InsightsSummary: TruncateRunes(notes, NotesSummaryLimit),
		Themes:          []core.Theme{},
		KeyQuotes:       []core.Quote{},
	}
}

// TruncateRunes returns at most n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
