package badger

import (
	"cmp"
	"context"
	"slices"

	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/storage"
)

// ListDocuments returns documents matching folder, newest first.
func (s *VectorStore) ListDocuments(ctx context.Context, folder string) []*core.IndexedDocument {
	docs, err := s.allDocuments(ctx)
	if err != nil {
		s.logger.Error("list documents failed", "err", err)
		return []*core.IndexedDocument{}
	}

	result := make([]*core.IndexedDocument, 0, len(docs))
	for _, doc := range docs {
		if storage.MatchesFolder(doc.Folders, folder) {
			result = append(result, doc)
		}
	}
	slices.SortStableFunc(result, func(a, b *core.IndexedDocument) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// ListChunks returns the chunks of documentID, or all chunks when empty.
func (s *VectorStore) ListChunks(ctx context.Context, documentID string) []*core.ChunkRecord {
	chunks, err := s.allChunks(ctx)
	if err != nil {
		s.logger.Error("list chunks failed", "err", err)
		return []*core.ChunkRecord{}
	}

	result := make([]*core.ChunkRecord, 0, len(chunks))
	for _, chunk := range chunks {
		if documentID == "" || chunk.DocumentID == documentID {
			result = append(result, chunk)
		}
	}
	return result
}

// GetDocument looks up a document by id.
func (s *VectorStore) GetDocument(ctx context.Context, id string) (*core.IndexedDocument, bool) {
	if id == "" || s.backend.IsClosed() {
		return nil, false
	}

	val, ok, err := s.backend.Get(makeDocumentKey(id))
	if err != nil {
		s.logger.Error("get document failed", "id", id, "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	doc, err := storage.UnmarshalDocument(val)
	if err != nil {
		s.logger.Error("decode document failed", "id", id, "err", err)
		return nil, false
	}
	return doc, true
}

// ThemeStats aggregates document and evidence counts per theme id.
func (s *VectorStore) ThemeStats(ctx context.Context) map[string]core.ThemeStat {
	docs, err := s.allDocuments(ctx)
	if err != nil {
		s.logger.Error("theme stats failed", "err", err)
		return map[string]core.ThemeStat{}
	}

	stats := make(map[string]core.ThemeStat)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc.Themes))
		for _, theme := range doc.Themes {
			st := stats[theme.Name]
			if !seen[theme.Name] {
				st.DocumentCount++
				seen[theme.Name] = true
			}
			st.TotalEvidenceCount += len(theme.Evidence)
			stats[theme.Name] = st
		}
	}
	return stats
}

// FolderStats counts documents per folder, most populated first and then
// by name.
func (s *VectorStore) FolderStats(ctx context.Context) []core.FolderStat {
	docs, err := s.allDocuments(ctx)
	if err != nil {
		s.logger.Error("folder stats failed", "err", err)
		return []core.FolderStat{}
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc.Folders))
		for _, f := range doc.Folders {
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			counts[f]++
		}
	}

	stats := make([]core.FolderStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, core.FolderStat{Name: name, Count: count})
	}
	slices.SortFunc(stats, func(a, b core.FolderStat) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return stats
}
