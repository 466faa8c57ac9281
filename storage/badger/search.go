package badger

import (
	"context"

	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/storage"
)

// SearchDocuments finds the limit documents nearest to vector, then applies
// the folder post-filter.
func (s *VectorStore) SearchDocuments(ctx context.Context, vector []float32, limit int, folder string) []*core.DocumentMatch {
	if limit <= 0 || len(vector) == 0 {
		return []*core.DocumentMatch{}
	}

	docs, err := s.allDocuments(ctx)
	if err != nil {
		s.logger.Error("document search failed", "err", err)
		return []*core.DocumentMatch{}
	}

	candidates := make([]scored[*core.IndexedDocument], 0, len(docs))
	skipped := 0
	for _, doc := range docs {
		if len(doc.Vector) != len(vector) {
			skipped++
			continue
		}
		candidates = append(candidates, scored[*core.IndexedDocument]{
			item:     doc,
			id:       doc.ID,
			distance: l2Distance(vector, doc.Vector),
		})
	}
	if skipped > 0 {
		s.logger.Debug("skipped documents with mismatched vectors", "count", skipped)
	}

	matches := make([]*core.DocumentMatch, 0, limit)
	for _, c := range nearest(candidates, limit) {
		if !storage.MatchesFolder(c.item.Folders, folder) {
			continue
		}
		matches = append(matches, &core.DocumentMatch{
			Document: c.item,
			Distance: c.distance,
			Score:    core.ScoreFromDistance(c.distance),
		})
	}
	return matches
}

// SearchChunks retrieves 2*limit nearest chunks, filters them and keeps
// at most limit.
func (s *VectorStore) SearchChunks(ctx context.Context, vector []float32, limit int, filter storage.ChunkFilter) []*core.ChunkMatch {
	if limit <= 0 || len(vector) == 0 {
		return []*core.ChunkMatch{}
	}

	chunks, err := s.allChunks(ctx)
	if err != nil {
		s.logger.Error("chunk search failed", "err", err)
		return []*core.ChunkMatch{}
	}

	candidates := make([]scored[*core.ChunkRecord], 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Vector) != len(vector) {
			continue
		}
		candidates = append(candidates, scored[*core.ChunkRecord]{
			item:     chunk,
			id:       chunk.ID,
			distance: l2Distance(vector, chunk.Vector),
		})
	}

	matches := make([]*core.ChunkMatch, 0, limit)
	for _, c := range nearest(candidates, 2*limit) {
		if !filter.Matches(c.item) {
			continue
		}
		matches = append(matches, &core.ChunkMatch{
			Chunk:    c.item,
			Distance: c.distance,
			Score:    core.ScoreFromDistance(c.distance),
		})
		if len(matches) == limit {
			break
		}
	}
	return matches
}
