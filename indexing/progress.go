package indexing

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// progressReporter prints a single self-overwriting status line per stage of
// an indexing run. A nil reporter does nothing.
type progressReporter struct {
	mu       sync.Mutex
	w        io.Writer
	total    int
	stage    string
	done     int
	chunks   int
	degraded int
	start    time.Time
}

func newProgressReporter(w io.Writer, total int) *progressReporter {
	if w == nil {
		return nil
	}
	return &progressReporter{w: w, total: total}
}

// beginStage ends the current line, if any, and resets the counters.
func (p *progressReporter) beginStage(stage string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != "" {
		fmt.Fprintln(p.w)
	}
	p.stage = stage
	p.done, p.chunks, p.degraded = 0, 0, 0
	p.start = time.Now()
	p.print()
}

// advance records one finished meeting. Safe for concurrent use.
func (p *progressReporter) advance(chunks int, degraded bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done = min(p.done+1, p.total)
	p.chunks += chunks
	if degraded {
		p.degraded++
	}
	p.print()
}

func (p *progressReporter) finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != "" {
		fmt.Fprintln(p.w)
		p.stage = ""
	}
}

// print must be called with the lock held.
func (p *progressReporter) print() {
	pct := 100.0
	if p.total > 0 {
		pct = float64(p.done) / float64(p.total) * 100
	}
	line := fmt.Sprintf("\r%-10s %d/%d meetings (%.0f%%)", p.stage, p.done, p.total, pct)
	if p.chunks > 0 {
		line += fmt.Sprintf(", %d chunks", p.chunks)
	}
	if p.degraded > 0 {
		line += fmt.Sprintf(", %d degraded", p.degraded)
	}
	fmt.Fprintf(p.w, "%s [%s]", line, time.Since(p.start).Round(100*time.Millisecond))
}
