package search

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/ai/mock"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/storage"
	"github.com/poiesic/minutes/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEmbedder places texts in a tiny space with one axis per topic so
// that ranking is predictable.
type keywordEmbedder struct {
	err error
}

var topics = [][]string{
	{"pric", "cost", "budget"},
	{"onboard", "setup"},
	{"secur", "compliance"},
	{"integrat", "api"},
}

func (k keywordEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	if k.err != nil {
		return nil, k.err
	}
	lower := strings.ToLower(text)
	vec := make([]float32, len(topics))
	var norm float64
	for i, words := range topics {
		for _, w := range words {
			vec[i] += float32(strings.Count(lower, w))
		}
		norm += float64(vec[i] * vec[i])
	}
	if norm > 0 {
		for i := range vec {
			vec[i] /= float32(math.Sqrt(norm))
		}
	}
	return vec, nil
}

func (k keywordEmbedder) EmbedTexts(ctx context.Context, texts []string, _ ...ai.EmbedOption) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := k.EmbedText(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var meetings = []layout.SourceDocument{
	{
		ID:            "acme",
		Title:         "Acme renewal",
		CreatedAt:     time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Folders:       []string{"A team"},
		Notes:         "Renewal call.",
		Transcript:    "[participant] The price is too high.",
		HasTranscript: true,
	},
	{
		ID:        "globex",
		Title:     "Globex kickoff",
		CreatedAt: time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
		Folders:   []string{"B team"},
		Notes:     "Kickoff.",
	},
	{
		ID:        "initech",
		Title:     "Initech review",
		CreatedAt: time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC),
		Folders:   []string{"A team", "Security"},
		Notes:     "Review.",
	},
}

var meetingInsights = map[string]ai.Insights{
	"Acme renewal": {
		InsightsSummary: "Acme pushed back on pricing and asked for a budget option.",
		Themes: []core.Theme{
			{Name: "pricing", Description: "Price too high for their budget", Evidence: []core.ThemeEvidence{
				{Text: "The price is too high", Speaker: core.SpeakerParticipant},
				{Text: "We can discuss tiers", Speaker: core.SpeakerHost},
			}},
		},
		KeyQuotes: []core.Quote{
			{Text: "We cannot justify the cost", Speaker: core.SpeakerParticipant, Theme: "pricing"},
			{Text: "Send us a proposal", Speaker: core.SpeakerParticipant},
			{Text: "Maybe next quarter", Speaker: core.SpeakerParticipant},
			{Text: "Thanks all", Speaker: core.SpeakerHost},
		},
	},
	"Globex kickoff": {
		InsightsSummary: "Globex onboarding and setup planning.",
		Themes: []core.Theme{
			{Name: "onboarding", Description: "Setup timeline", Evidence: []core.ThemeEvidence{
				{Text: "Setup should take a week", Speaker: core.SpeakerHost},
			}},
		},
		KeyQuotes: []core.Quote{},
	},
	"Initech review": {
		InsightsSummary: "Initech asked about security compliance and API integrations.",
		Themes: []core.Theme{
			{Name: "security_compliance", Description: "SOC 2", Evidence: []core.ThemeEvidence{
				{Text: "Do you have SOC 2?", Speaker: core.SpeakerParticipant},
			}},
			{Name: "pricing", Description: "Asked about cost of the API tier", Evidence: []core.ThemeEvidence{
				{Text: "What does the API tier cost?", Speaker: core.SpeakerParticipant},
			}},
		},
		KeyQuotes: []core.Quote{
			{Text: "Security is a blocker", Speaker: core.SpeakerParticipant, Theme: "security_compliance", Timestamp: "00:10:00"},
		},
	},
}

type fixture struct {
	store    storage.VectorStore
	searcher *Searcher
	root     string
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := badger.NewMemoryVectorStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	root := t.TempDir()
	l := layout.New(root)
	for _, m := range meetings {
		require.NoError(t, l.WriteDocument(m))
	}

	extractor := mock.NewMockInsightExtractor().WithExtractFunc(func(_ context.Context, req ai.ExtractionRequest) ai.Insights {
		return meetingInsights[req.Title]
	})
	provider := &keywordProvider{extractor: extractor}
	ix, err := indexing.NewIndexer(store, provider)
	require.NoError(t, err)
	_, err = ix.Index(ctx, root, indexing.IndexOptions{})
	require.NoError(t, err)

	opts = append([]Option{WithLayout(l)}, opts...)
	searcher, err := NewSearcher(store, keywordEmbedder{}, opts...)
	require.NoError(t, err)
	return &fixture{store: store, searcher: searcher, root: root}
}

type keywordProvider struct {
	extractor ai.InsightExtractor
}

func (p *keywordProvider) Embedder() ai.Embedder                 { return keywordEmbedder{} }
func (p *keywordProvider) InsightExtractor() ai.InsightExtractor { return p.extractor }
func (p *keywordProvider) Close() error                          { return nil }

func TestNewSearcher(t *testing.T) {
	store, err := badger.NewMemoryVectorStore()
	require.NoError(t, err)
	defer store.Close()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(store, keywordEmbedder{})
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(store, nil, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewSearcher(nil, keywordEmbedder{})
		assert.Equal(t, ErrVectorStoreRequired, err)
	})
}

func TestSearch_RanksSemanticallyClosest(t *testing.T) {
	f := newFixture(t)

	resp, err := f.searcher.Search(context.Background(), "pricing feedback", "", 5)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, "acme", resp.Results[0].ID)
	assert.Greater(t, resp.Results[0].Score, resp.Results[1].Score)
	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Score, resp.Results[i].Score)
	}

	top := resp.Results[0]
	assert.Equal(t, "Acme renewal", top.Title)
	assert.Equal(t, []string{"pricing"}, top.Themes)
	assert.True(t, top.HasTranscript)
	assert.Len(t, top.TopQuotes, TopQuotesPerHit)
	assert.Equal(t, "We cannot justify the cost", top.TopQuotes[0].Text)
	assert.Equal(t, math.Round(top.Score*1000)/1000, top.Score)
	assert.Greater(t, top.Score, 0.0)
	assert.LessOrEqual(t, top.Score, 1.0)
}

func TestSearch_FolderFilterIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	resp, err := f.searcher.Search(context.Background(), "pricing", "a TEAM", 10)
	require.NoError(t, err)

	var ids []string
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"acme", "initech"}, ids)
}

func TestSearch_ThemeStatsRestrictedToHits(t *testing.T) {
	f := newFixture(t)

	resp, err := f.searcher.Search(context.Background(), "onboarding setup", "b team", 5)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	assert.Equal(t, map[string]ThemeStat{
		"onboarding": {DocumentCount: 1, TotalEvidenceCount: 1},
	}, resp.ThemeStats)

	resp, err = f.searcher.Search(context.Background(), "pricing", "a team", 5)
	require.NoError(t, err)
	assert.Equal(t, ThemeStat{DocumentCount: 2, TotalEvidenceCount: 3}, resp.ThemeStats["pricing"])
	assert.Contains(t, resp.ThemeStats, "security_compliance")
	assert.NotContains(t, resp.ThemeStats, "onboarding")
}

func TestSearch_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	resp, err := f.searcher.Search(context.Background(), "pricing", "", 0)
	require.NoError(t, err)
	assert.Len(t, resp.Results, 3)
	assert.Equal(t, "pricing", resp.Query)
}

func TestSearch_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.searcher.Search(ctx, "   ", "", 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)

	noEmbedder, err := NewSearcher(f.store, nil)
	require.NoError(t, err)
	_, err = noEmbedder.Search(ctx, "pricing", "", 5)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	boom := errors.New("upstream down")
	failing, err := NewSearcher(f.store, keywordEmbedder{err: boom})
	require.NoError(t, err)
	_, err = failing.Search(ctx, "pricing", "", 5)
	assert.ErrorIs(t, err, boom)
}

func TestSearch_EmptyIndex(t *testing.T) {
	store, err := badger.NewMemoryVectorStore()
	require.NoError(t, err)
	defer store.Close()

	searcher, err := NewSearcher(store, keywordEmbedder{})
	require.NoError(t, err)

	resp, err := searcher.Search(context.Background(), "pricing", "", 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Empty(t, resp.ThemeStats)
}

type recordingMonitor struct {
	stages []string
}

func (m *recordingMonitor) Start(string) {
	m.stages = append(m.stages, "start")
}

func (m *recordingMonitor) AfterQueryEmbedding(int) {
	m.stages = append(m.stages, "embed")
}

func (m *recordingMonitor) AfterDocumentSearch([]*core.DocumentMatch) {
	m.stages = append(m.stages, "search")
}

func (m *recordingMonitor) Finish(*SearchResponse) {
	m.stages = append(m.stages, "finish")
}

func TestSearchWithMonitor(t *testing.T) {
	f := newFixture(t)
	monitor := &recordingMonitor{}

	_, err := f.searcher.SearchWithMonitor(context.Background(), "pricing", "", 5, monitor)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "embed", "search", "finish"}, monitor.stages)
}

func TestSearchByTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	matches := f.searcher.SearchByTheme(ctx, "pricing", "", 10)
	require.Len(t, matches, 2)
	// newest first
	assert.Equal(t, "initech", matches[0].DocumentID)
	assert.Equal(t, "acme", matches[1].DocumentID)

	acme := matches[1]
	assert.Equal(t, []Evidence{
		{Text: "The price is too high", Speaker: "participant"},
		{Text: "We can discuss tiers", Speaker: "host"},
	}, acme.Evidence)
	require.Len(t, acme.Quotes, 1)
	assert.Equal(t, "We cannot justify the cost", acme.Quotes[0].Text)
	assert.Empty(t, matches[0].Quotes)

	assert.Len(t, f.searcher.SearchByTheme(ctx, "pricing", "", 1), 1)
	assert.Empty(t, f.searcher.SearchByTheme(ctx, "not_a_theme", "", 10))
	assert.Empty(t, f.searcher.SearchByTheme(ctx, "churn_risk", "", 10))

	matches = f.searcher.SearchByTheme(ctx, "pricing", "b team", 10)
	assert.Empty(t, matches)
}

func TestSearchByTheme_CandidatePool(t *testing.T) {
	f := newFixture(t)

	// Newest first: globex, initech, acme. Limit 1 gives a pool of two.
	matches := f.searcher.SearchByTheme(context.Background(), "security_compliance", "", 1)
	require.Len(t, matches, 1)
	assert.Equal(t, "initech", matches[0].DocumentID)

	store, err := badger.NewMemoryVectorStore()
	require.NoError(t, err)
	defer store.Close()
	var docs []*core.IndexedDocument
	for i := 0; i < 5; i++ {
		doc := &core.IndexedDocument{
			ID:        string(rune('a' + i)),
			CreatedAt: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			Themes:    []core.Theme{},
			KeyQuotes: []core.Quote{},
			Vector:    []float32{1},
		}
		if i == 0 {
			doc.Themes = []core.Theme{{Name: "pricing", Evidence: []core.ThemeEvidence{{Text: "x", Speaker: core.SpeakerHost}}}}
		}
		docs = append(docs, doc)
	}
	require.NoError(t, store.StoreDocuments(context.Background(), docs))

	searcher, err := NewSearcher(store, nil)
	require.NoError(t, err)
	assert.Empty(t, searcher.SearchByTheme(context.Background(), "pricing", "", 2), "oldest document is outside the 2*limit pool")
	assert.Len(t, searcher.SearchByTheme(context.Background(), "pricing", "", 3), 1)
}

func TestGetDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	detail, ok := f.searcher.GetDocument(ctx, "initech")
	require.True(t, ok)
	assert.Equal(t, "Initech review", detail.Title)
	assert.Equal(t, "Review.", detail.Notes)
	assert.Equal(t, []string{"A team", "Security"}, detail.Folders)
	assert.Nil(t, detail.UpdatedAt)
	require.Len(t, detail.Themes, 2)
	assert.Equal(t, "Security & Compliance", detail.Themes[0].Name)
	assert.Equal(t, "security_compliance", detail.Themes[0].ID)
	assert.Equal(t, "00:10:00", detail.KeyQuotes[0].Timestamp)
	assert.Equal(t, 4, detail.ChunkCount)

	_, ok = f.searcher.GetDocument(ctx, "missing")
	assert.False(t, ok)
}

func TestGetTranscript(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	text, ok, err := f.searcher.GetTranscript(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[participant] The price is too high.\n", text)

	_, ok, err = f.searcher.GetTranscript(ctx, "globex")
	require.NoError(t, err)
	assert.False(t, ok, "indexed but no transcript file")

	_, ok, err = f.searcher.GetTranscript(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	noLayout, err := NewSearcher(f.store, nil)
	require.NoError(t, err)
	_, _, err = noLayout.GetTranscript(ctx, "acme")
	assert.ErrorIs(t, err, ErrLayoutRequired)
}

func TestGetTranscript_NotesFileNameDiffersFromTitle(t *testing.T) {
	ctx := context.Background()
	store, err := badger.NewMemoryVectorStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	root := t.TempDir()
	l := layout.New(root)
	require.NoError(t, os.MkdirAll(l.NotesDir(), 0o755))
	require.NoError(t, os.MkdirAll(l.TranscriptsDir(), 0o755))
	notes := "---\nid: c1\ntitle: Renamed call\n---\nDiscussed pricing.\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "call.md"), []byte(notes), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "transcripts", "call.txt"), []byte("[participant] Too expensive.\n"), 0o644))

	ix, err := indexing.NewIndexer(store, &keywordProvider{extractor: mock.NewMockInsightExtractor()})
	require.NoError(t, err)
	_, err = ix.Index(ctx, root, indexing.IndexOptions{SkipExtraction: true})
	require.NoError(t, err)

	searcher, err := NewSearcher(store, keywordEmbedder{}, WithLayout(l))
	require.NoError(t, err)

	detail, ok := searcher.GetDocument(ctx, "c1")
	require.True(t, ok)
	require.True(t, detail.HasTranscript)

	text, ok, err := searcher.GetTranscript(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, ok, "a document reported with a transcript must serve it")
	assert.Equal(t, "[participant] Too expensive.\n", text)
}

func TestListDocuments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.searcher.ListDocuments(ctx, "", 2)
	assert.Equal(t, 3, list.TotalCount)
	require.Len(t, list.Documents, 2)
	assert.Equal(t, "globex", list.Documents[0].ID)
	assert.Equal(t, "initech", list.Documents[1].ID)
	assert.Equal(t, []string{"security_compliance", "pricing"}, list.Documents[1].Themes)

	list = f.searcher.ListDocuments(ctx, "security", 0)
	assert.Equal(t, 1, list.TotalCount)
	require.Len(t, list.Documents, 1)
	assert.Equal(t, "Initech asked about security compliance and API integrations.", list.Documents[0].Summary)

	list = f.searcher.ListDocuments(ctx, "nobody", 0)
	assert.Equal(t, 0, list.TotalCount)
	assert.NotNil(t, list.Documents)
}

func TestListFolders(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []FolderListing{
		{Name: "A team", Count: 2},
		{Name: "B team", Count: 1},
		{Name: "Security", Count: 1},
	}, f.searcher.ListFolders(context.Background()))
}

func TestListThemes(t *testing.T) {
	f := newFixture(t)
	themes := f.searcher.ListThemes(context.Background())

	defs := core.Themes()
	require.Len(t, themes, len(defs))
	for i, def := range defs {
		assert.Equal(t, def.ID, themes[i].ID)
	}

	byID := make(map[string]ThemeListing)
	for _, th := range themes {
		byID[th.ID] = th
	}
	assert.Equal(t, 2, byID["pricing"].DocumentCount)
	assert.Equal(t, 3, byID["pricing"].TotalEvidenceCount)
	assert.Equal(t, 0, byID["churn_risk"].DocumentCount)
	assert.Equal(t, "Pricing", byID["pricing"].Name)
}

func TestSearchExcerpts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	excerpts, err := f.searcher.SearchExcerpts(ctx, "pricing cost", ExcerptFilter{Kind: core.ChunkKindTheme, Theme: "pricing"}, 5)
	require.NoError(t, err)
	require.NotEmpty(t, excerpts)
	for _, e := range excerpts {
		assert.Equal(t, "theme", e.Kind)
		assert.Equal(t, "pricing", e.Theme)
		assert.True(t, strings.HasPrefix(e.Content, "Theme Pricing:"))
		assert.NotEmpty(t, e.Title)
	}

	quotes, err := f.searcher.SearchExcerpts(ctx, "security", ExcerptFilter{Kind: core.ChunkKindQuote}, 1)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "initech", quotes[0].DocumentID)
	assert.Equal(t, "00:10:00", quotes[0].Timestamp)

	_, err = f.searcher.SearchExcerpts(ctx, "x", ExcerptFilter{Kind: "paragraph"}, 5)
	assert.ErrorIs(t, err, core.ErrInvalidChunkKind)
}
