package indexing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/layout"
)

// buildDocument embeds a meeting's searchable texts in one ordered batch and
// returns its document row and chunks: the summary first, then one chunk per
// theme and per quote.
func (ix *Indexer) buildDocument(ctx context.Context, src layout.SourceDocument, insights ai.Insights) (*core.IndexedDocument, []*core.ChunkRecord, error) {
	themes, quotes := ix.retainValid(src.ID, insights)

	texts := make([]string, 0, 1+len(themes)+len(quotes))
	texts = append(texts, ai.SummaryText(insights.InsightsSummary))
	for _, theme := range themes {
		texts = append(texts, ai.ThemeText(theme))
	}
	for _, quote := range quotes {
		texts = append(texts, ai.QuoteText(quote))
	}

	vectors, err := ix.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, nil, fmt.Errorf("embed: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrEmbeddingCount, len(vectors), len(texts))
	}

	doc := &core.IndexedDocument{
		ID:              src.ID,
		Title:           src.Title,
		Folders:         src.Folders,
		CreatedAt:       src.CreatedAt,
		UpdatedAt:       src.UpdatedAt,
		RawSummary:      src.Notes,
		Themes:          themes,
		KeyQuotes:       quotes,
		InsightsSummary: insights.InsightsSummary,
		HasTranscript:   src.HasTranscript,
		SourceName:      src.SourceName,
		Vector:          vectors[0],
	}

	chunks := make([]*core.ChunkRecord, 0, len(texts))
	chunks = append(chunks, &core.ChunkRecord{
		ID:         core.ChunkID(src.ID, core.ChunkKindSummary, ""),
		DocumentID: src.ID,
		Content:    texts[0],
		Kind:       core.ChunkKindSummary,
		Vector:     vectors[0],
	})

	next := 1
	for i, theme := range themes {
		chunks = append(chunks, &core.ChunkRecord{
			ID:         core.ChunkID(src.ID, core.ChunkKindTheme, strconv.Itoa(i)),
			DocumentID: src.ID,
			Content:    texts[next],
			Kind:       core.ChunkKindTheme,
			ThemeName:  theme.Name,
			Vector:     vectors[next],
		})
		next++
	}
	for i, quote := range quotes {
		chunks = append(chunks, &core.ChunkRecord{
			ID:         core.ChunkID(src.ID, core.ChunkKindQuote, strconv.Itoa(i)),
			DocumentID: src.ID,
			Content:    texts[next],
			Kind:       core.ChunkKindQuote,
			ThemeName:  quote.Theme,
			Timestamp:  quote.Timestamp,
			Vector:     vectors[next],
		})
		next++
	}

	return doc, chunks, nil
}

// retainValid drops themes and quotes the store would reject. It must run
// before the store is reset.
func (ix *Indexer) retainValid(docID string, insights ai.Insights) ([]core.Theme, []core.Quote) {
	themes := make([]core.Theme, 0, len(insights.Themes))
	for i := range insights.Themes {
		if err := core.ValidateTheme(&insights.Themes[i]); err != nil {
			ix.logger.Warn("dropping theme", "id", docID, "err", err)
			continue
		}
		themes = append(themes, insights.Themes[i])
	}

	quotes := make([]core.Quote, 0, len(insights.KeyQuotes))
	for i := range insights.KeyQuotes {
		if err := core.ValidateQuote(&insights.KeyQuotes[i]); err != nil {
			ix.logger.Warn("dropping quote", "id", docID, "err", err)
			continue
		}
		quotes = append(quotes, insights.KeyQuotes[i])
	}
	return themes, quotes
}
