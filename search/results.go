package search

import (
	"math"
	"time"

	"github.com/poiesic/minutes/core"
)

// TopQuotesPerHit is the number of key quotes attached to a search hit.
const TopQuotesPerHit = 3

// Evidence is a speaker-attributed excerpt backing a theme.
type Evidence struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// Quote is a notable excerpt from a meeting.
type Quote struct {
	Text      string `json:"text"`
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp,omitempty"`
	Context   string `json:"context,omitempty"`
	Theme     string `json:"theme,omitempty"`
}

// Theme is a detected theme with its evidence.
type Theme struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Evidence    []Evidence `json:"evidence"`
}

// SearchHit summarizes one document matched by free-text search.
type SearchHit struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Folders       []string  `json:"folders"`
	CreatedAt     time.Time `json:"created_at"`
	Summary       string    `json:"summary"`
	Score         float64   `json:"score"`
	Themes        []string  `json:"themes"`
	TopQuotes     []Quote   `json:"top_quotes"`
	HasTranscript bool      `json:"has_transcript"`
}

// ThemeStat aggregates a theme across the index.
type ThemeStat struct {
	DocumentCount      int `json:"document_count"`
	TotalEvidenceCount int `json:"total_evidence_count"`
}

// SearchResponse is the result of free-text search. ThemeStats covers only
// themes that appear among the hits.
type SearchResponse struct {
	Query      string               `json:"query"`
	Results    []SearchHit          `json:"results"`
	ThemeStats map[string]ThemeStat `json:"theme_stats"`
}

// ThemeMatch is a document carrying the theme asked for by theme search.
type ThemeMatch struct {
	DocumentID string     `json:"document_id"`
	Title      string     `json:"title"`
	Folders    []string   `json:"folders"`
	CreatedAt  time.Time  `json:"created_at"`
	Evidence   []Evidence `json:"evidence"`
	Quotes     []Quote    `json:"quotes"`
}

// DocumentDetail is the full projection of an indexed document.
type DocumentDetail struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Folders       []string   `json:"folders"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Summary       string     `json:"summary"`
	Notes         string     `json:"notes"`
	Themes        []Theme    `json:"themes"`
	KeyQuotes     []Quote    `json:"key_quotes"`
	HasTranscript bool       `json:"has_transcript"`
	ChunkCount    int        `json:"chunk_count"`
}

// DocumentSummary is a document as shown in listings.
type DocumentSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Folders       []string  `json:"folders"`
	CreatedAt     time.Time `json:"created_at"`
	Summary       string    `json:"summary"`
	Themes        []string  `json:"themes"`
	HasTranscript bool      `json:"has_transcript"`
}

// DocumentList is one page of documents and the number matching overall.
type DocumentList struct {
	Documents  []DocumentSummary `json:"documents"`
	TotalCount int               `json:"total_count"`
}

// FolderListing is a folder and the number of documents in it.
type FolderListing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ThemeListing is a catalog entry with its live statistics.
type ThemeListing struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Prompt             string `json:"prompt"`
	DocumentCount      int    `json:"document_count"`
	TotalEvidenceCount int    `json:"total_evidence_count"`
}

// Excerpt is a chunk matched by excerpt search.
type Excerpt struct {
	ChunkID    string  `json:"chunk_id"`
	DocumentID string  `json:"document_id"`
	Title      string  `json:"title"`
	Kind       string  `json:"kind"`
	Theme      string  `json:"theme,omitempty"`
	Timestamp  string  `json:"timestamp,omitempty"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}

func roundScore(score float32) float64 {
	return math.Round(float64(score)*1000) / 1000
}

func newQuote(q core.Quote) Quote {
	return Quote{
		Text:      q.Text,
		Speaker:   string(q.Speaker),
		Timestamp: q.Timestamp,
		Context:   q.Context,
		Theme:     q.Theme,
	}
}

func newQuotes(quotes []core.Quote) []Quote {
	out := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, newQuote(q))
	}
	return out
}

func newEvidence(evidence []core.ThemeEvidence) []Evidence {
	out := make([]Evidence, 0, len(evidence))
	for _, ev := range evidence {
		out = append(out, Evidence{Text: ev.Text, Speaker: string(ev.Speaker)})
	}
	return out
}

func newThemes(themes []core.Theme) []Theme {
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, Theme{
			ID:          t.Name,
			Name:        core.ThemeDisplayName(t.Name),
			Description: t.Description,
			Evidence:    newEvidence(t.Evidence),
		})
	}
	return out
}

func folders(doc *core.IndexedDocument) []string {
	if doc.Folders == nil {
		return []string{}
	}
	return doc.Folders
}

func newDocumentSummary(doc *core.IndexedDocument) DocumentSummary {
	return DocumentSummary{
		ID:            doc.ID,
		Title:         doc.Title,
		Folders:       folders(doc),
		CreatedAt:     doc.CreatedAt,
		Summary:       doc.InsightsSummary,
		Themes:        doc.ThemeNames(),
		HasTranscript: doc.HasTranscript,
	}
}
