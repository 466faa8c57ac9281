package search

import (
	"context"
	"fmt"

	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/storage"
)

// ExcerptFilter restricts excerpt search. Empty fields match everything.
type ExcerptFilter struct {
	Kind  core.ChunkKind
	Theme string
}

// SearchExcerpts finds the summary, theme and quote chunks closest to query.
func (s *Searcher) SearchExcerpts(ctx context.Context, query string, filter ExcerptFilter, limit int) ([]Excerpt, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidChunkKind, filter.Kind)
	}
	if limit <= 0 {
		limit = DefaultExcerptLimit
	}

	vector, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	matches := s.store.SearchChunks(ctx, vector, limit, storage.ChunkFilter{
		Kind:      filter.Kind,
		ThemeName: filter.Theme,
	})

	titles := make(map[string]string)
	excerpts := make([]Excerpt, 0, len(matches))
	for _, m := range matches {
		chunk := m.Chunk
		title, seen := titles[chunk.DocumentID]
		if !seen {
			if doc, ok := s.store.GetDocument(ctx, chunk.DocumentID); ok {
				title = doc.Title
			}
			titles[chunk.DocumentID] = title
		}
		excerpts = append(excerpts, Excerpt{
			ChunkID:    chunk.ID,
			DocumentID: chunk.DocumentID,
			Title:      title,
			Kind:       string(chunk.Kind),
			Theme:      chunk.ThemeName,
			Timestamp:  chunk.Timestamp,
			Content:    chunk.Content,
			Score:      roundScore(m.Score),
		})
	}
	return excerpts, nil
}
