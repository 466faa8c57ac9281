package indexing

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/layout"
)

// extractAll runs extraction for docs in windows of windowSize concurrent
// calls, waiting windowDelay between windows. Results are aligned with docs.
func (ix *Indexer) extractAll(ctx context.Context, docs []layout.SourceDocument, model string, progress *progressReporter) ([]ai.Insights, error) {
	results := make([]ai.Insights, len(docs))
	if len(docs) == 0 {
		return results, nil
	}

	pool, err := ants.NewPool(ix.windowSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	for start := 0; start < len(docs); start += ix.windowSize {
		if start > 0 {
			if err := wait(ctx, ix.windowDelay); err != nil {
				return nil, err
			}
		}
		end := min(start+ix.windowSize, len(docs))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			req := extractionRequest(docs[i], model)
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				results[i] = ix.extractor.ExtractInsights(ctx, req)
				progress.advance(0, results[i].Degraded)
			})
			if err != nil {
				wg.Done()
				wg.Wait()
				return nil, err
			}
		}
		wg.Wait()

		ix.logger.Debug("extraction window done", "from", start, "to", end, "total", len(docs))
	}
	return results, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
