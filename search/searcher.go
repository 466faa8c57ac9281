package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/storage"
)

const (
	DefaultSearchLimit  = 5
	DefaultThemeLimit   = 10
	DefaultListLimit    = 20
	DefaultExcerptLimit = 10
)

// Searcher answers queries against the meeting index.
type Searcher struct {
	store    storage.VectorStore
	embedder ai.Embedder
	layout   *layout.Layout
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "searcher")
		return nil
	}
}

// WithLayout sets the export layout used to locate transcripts.
func WithLayout(l layout.Layout) Option {
	return func(s *Searcher) error {
		s.layout = &l
		return nil
	}
}

// NewSearcher creates a searcher over store. embedder may be nil, in which
// case free-text and excerpt search return ErrEmbedderRequired and every
// other query still works.
func NewSearcher(store storage.VectorStore, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrVectorStoreRequired
	}

	s := &Searcher{
		store:    store,
		embedder: embedder,
		logger:   slog.Default().With("component", "searcher"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Searcher) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if s.embedder == nil {
		return nil, ErrEmbedderRequired
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	return vector, nil
}

// Search finds the documents closest to query, optionally restricted to
// folders containing folder. A non-positive limit means DefaultSearchLimit.
func (s *Searcher) Search(ctx context.Context, query, folder string, limit int) (*SearchResponse, error) {
	return s.SearchWithMonitor(ctx, query, folder, limit, nil)
}

// SearchWithMonitor is Search with callbacks at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query, folder string, limit int, monitor SearchMonitor) (*SearchResponse, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	monitor.Start(query)

	vector, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	monitor.AfterQueryEmbedding(len(vector))

	matches := s.store.SearchDocuments(ctx, vector, limit, folder)
	monitor.AfterDocumentSearch(matches)

	response := &SearchResponse{
		Query:      query,
		Results:    make([]SearchHit, 0, len(matches)),
		ThemeStats: map[string]ThemeStat{},
	}
	hitThemes := make(map[string]bool)
	for _, m := range matches {
		doc := m.Document
		top := doc.KeyQuotes
		if len(top) > TopQuotesPerHit {
			top = top[:TopQuotesPerHit]
		}
		response.Results = append(response.Results, SearchHit{
			ID:            doc.ID,
			Title:         doc.Title,
			Folders:       folders(doc),
			CreatedAt:     doc.CreatedAt,
			Summary:       doc.InsightsSummary,
			Score:         roundScore(m.Score),
			Themes:        doc.ThemeNames(),
			TopQuotes:     newQuotes(top),
			HasTranscript: doc.HasTranscript,
		})
		for _, name := range doc.ThemeNames() {
			hitThemes[name] = true
		}
	}

	if len(hitThemes) > 0 {
		for name, st := range s.store.ThemeStats(ctx) {
			if hitThemes[name] {
				response.ThemeStats[name] = ThemeStat{
					DocumentCount:      st.DocumentCount,
					TotalEvidenceCount: st.TotalEvidenceCount,
				}
			}
		}
	}

	monitor.Finish(response)
	return response, nil
}

// SearchByTheme returns documents tagged with themeID, newest first, with
// the theme's evidence and the key quotes tagged with it. Unknown theme ids
// yield no matches. Candidates are the first 2*limit documents in folder.
func (s *Searcher) SearchByTheme(ctx context.Context, themeID, folder string, limit int) []ThemeMatch {
	if !core.IsKnownTheme(themeID) {
		return []ThemeMatch{}
	}
	if limit <= 0 {
		limit = DefaultThemeLimit
	}

	candidates := s.store.ListDocuments(ctx, folder)
	if len(candidates) > 2*limit {
		candidates = candidates[:2*limit]
	}

	matches := make([]ThemeMatch, 0, limit)
	for _, doc := range candidates {
		theme, ok := doc.FindTheme(themeID)
		if !ok {
			continue
		}
		quotes := make([]Quote, 0)
		for _, q := range doc.KeyQuotes {
			if q.Theme == themeID {
				quotes = append(quotes, newQuote(q))
			}
		}
		matches = append(matches, ThemeMatch{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Folders:    folders(doc),
			CreatedAt:  doc.CreatedAt,
			Evidence:   newEvidence(theme.Evidence),
			Quotes:     quotes,
		})
		if len(matches) == limit {
			break
		}
	}
	return matches
}

// GetDocument returns the full detail of a document.
func (s *Searcher) GetDocument(ctx context.Context, id string) (*DocumentDetail, bool) {
	doc, ok := s.store.GetDocument(ctx, id)
	if !ok {
		return nil, false
	}

	detail := &DocumentDetail{
		ID:            doc.ID,
		Title:         doc.Title,
		Folders:       folders(doc),
		CreatedAt:     doc.CreatedAt,
		Summary:       doc.InsightsSummary,
		Notes:         doc.RawSummary,
		Themes:        newThemes(doc.Themes),
		KeyQuotes:     newQuotes(doc.KeyQuotes),
		HasTranscript: doc.HasTranscript,
		ChunkCount:    len(s.store.ListChunks(ctx, doc.ID)),
	}
	if !doc.UpdatedAt.IsZero() {
		updated := doc.UpdatedAt
		detail.UpdatedAt = &updated
	}
	return detail, true
}

// GetTranscript returns the transcript of an indexed document. The boolean
// is false when the id is not indexed or no transcript file exists.
func (s *Searcher) GetTranscript(ctx context.Context, id string) (string, bool, error) {
	if s.layout == nil {
		return "", false, ErrLayoutRequired
	}
	doc, ok := s.store.GetDocument(ctx, id)
	if !ok {
		return "", false, nil
	}
	return s.layout.FindTranscript(doc.Title, doc.SourceName)
}

// ListDocuments returns up to limit documents in folder, newest first, and
// the number of documents in folder.
func (s *Searcher) ListDocuments(ctx context.Context, folder string, limit int) *DocumentList {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	docs := s.store.ListDocuments(ctx, folder)

	list := &DocumentList{
		Documents:  make([]DocumentSummary, 0, min(limit, len(docs))),
		TotalCount: len(docs),
	}
	for _, doc := range docs {
		if len(list.Documents) == limit {
			break
		}
		list.Documents = append(list.Documents, newDocumentSummary(doc))
	}
	return list
}

// ListFolders returns every folder with its document count, largest first.
func (s *Searcher) ListFolders(ctx context.Context) []FolderListing {
	stats := s.store.FolderStats(ctx)
	out := make([]FolderListing, 0, len(stats))
	for _, st := range stats {
		out = append(out, FolderListing{Name: st.Name, Count: st.Count})
	}
	return out
}

// ListThemes returns the theme catalog in registry order with live counts.
func (s *Searcher) ListThemes(ctx context.Context) []ThemeListing {
	stats := s.store.ThemeStats(ctx)
	defs := core.Themes()
	out := make([]ThemeListing, 0, len(defs))
	for _, def := range defs {
		st := stats[def.ID]
		out = append(out, ThemeListing{
			ID:                 def.ID,
			Name:               def.Name,
			Prompt:             def.Prompt,
			DocumentCount:      st.DocumentCount,
			TotalEvidenceCount: st.TotalEvidenceCount,
		})
	}
	return out
}
