package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/search"
	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

// render writes v as indented JSON when --json is set, otherwise it runs text
// against a printer bound to the app's writer.
func render(c *cli.Context, v any, text func(p *printer)) error {
	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	p := newPrinter(c.App.Writer)
	text(p)
	return p.err
}

type printer struct {
	w   io.Writer
	r   *lipgloss.Renderer
	err error

	title  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	header lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:      w,
		r:      r,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		accent: r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.r.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	p.println(t.Render())
}

func (p *printer) raw(text string) {
	p.printf("%s", text)
	if !strings.HasSuffix(text, "\n") {
		p.println("")
	}
}

func (p *printer) indexResult(r *indexing.Result) {
	p.printf("Indexed %d documents (%d chunks)\n", r.DocumentsIndexed, r.ChunksCreated)
	if r.DegradedExtractions > 0 {
		p.println(p.muted.Render(fmt.Sprintf("%d documents indexed without insights", r.DegradedExtractions)))
	}
}

func (p *printer) heading(id, title string, created time.Time, folders []string) {
	line := p.title.Render(title) + " " + p.muted.Render("("+id+")")
	p.println(line)
	meta := created.Format(dateLayout)
	if len(folders) > 0 {
		meta += "  " + strings.Join(folders, ", ")
	}
	p.println(p.muted.Render(meta))
}

func (p *printer) quotes(quotes []search.Quote, indent string) {
	for _, q := range quotes {
		line := fmt.Sprintf("%s> %q [%s]", indent, q.Text, q.Speaker)
		if q.Timestamp != "" {
			line += " @" + q.Timestamp
		}
		p.println(line)
	}
}

func (p *printer) searchResponse(resp *search.SearchResponse) {
	if len(resp.Results) == 0 {
		p.println("No matching meetings.")
		return
	}
	for i, hit := range resp.Results {
		if i > 0 {
			p.println("")
		}
		p.printf("%d. ", i+1)
		p.heading(hit.ID, hit.Title, hit.CreatedAt, hit.Folders)
		p.println(p.accent.Render(fmt.Sprintf("score %.3f", hit.Score)))
		if hit.Summary != "" {
			p.println(hit.Summary)
		}
		if len(hit.Themes) > 0 {
			p.println("themes: " + strings.Join(hit.Themes, ", "))
		}
		p.quotes(hit.TopQuotes, "  ")
	}

	if len(resp.ThemeStats) == 0 {
		return
	}
	names := make([]string, 0, len(resp.ThemeStats))
	for name := range resp.ThemeStats {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		st := resp.ThemeStats[name]
		rows = append(rows, []string{name, fmt.Sprint(st.DocumentCount), fmt.Sprint(st.TotalEvidenceCount)})
	}
	p.println("")
	p.table([]string{"THEME", "MEETINGS", "EVIDENCE"}, rows)
}

func (p *printer) excerpts(excerpts []search.Excerpt) {
	if len(excerpts) == 0 {
		p.println("No matching excerpts.")
		return
	}
	for i, ex := range excerpts {
		if i > 0 {
			p.println("")
		}
		label := ex.Kind
		if ex.Theme != "" {
			label += ":" + ex.Theme
		}
		p.println(p.title.Render(ex.Title) + " " + p.muted.Render("("+ex.DocumentID+")") + " " +
			p.accent.Render(fmt.Sprintf("%s %.3f", label, ex.Score)))
		p.println(ex.Content)
	}
}

func (p *printer) themeMatches(themeID string, matches []search.ThemeMatch) {
	if len(matches) == 0 {
		p.printf("No meetings tagged %s.\n", core.ThemeDisplayName(themeID))
		return
	}
	for i, m := range matches {
		if i > 0 {
			p.println("")
		}
		p.heading(m.DocumentID, m.Title, m.CreatedAt, m.Folders)
		for _, ev := range m.Evidence {
			p.printf("  - %s [%s]\n", ev.Text, ev.Speaker)
		}
		p.quotes(m.Quotes, "  ")
	}
}

func (p *printer) documentDetail(d *search.DocumentDetail) {
	p.heading(d.ID, d.Title, d.CreatedAt, d.Folders)
	if d.Summary != "" {
		p.println("")
		p.println(d.Summary)
	}
	for _, t := range d.Themes {
		p.println("")
		p.println(p.accent.Render(t.Name))
		if t.Description != "" {
			p.println(t.Description)
		}
		for _, ev := range t.Evidence {
			p.printf("  - %s [%s]\n", ev.Text, ev.Speaker)
		}
	}
	if len(d.KeyQuotes) > 0 {
		p.println("")
		p.println(p.accent.Render("Key quotes"))
		p.quotes(d.KeyQuotes, "  ")
	}
	transcript := "no transcript"
	if d.HasTranscript {
		transcript = "transcript available"
	}
	p.println("")
	p.println(p.muted.Render(fmt.Sprintf("%d chunks, %s", d.ChunkCount, transcript)))
}

func (p *printer) documentList(list *search.DocumentList) {
	if len(list.Documents) == 0 {
		p.println("No meetings indexed.")
		return
	}
	rows := make([][]string, 0, len(list.Documents))
	for _, d := range list.Documents {
		rows = append(rows, []string{d.ID, d.CreatedAt.Format(dateLayout), d.Title, strings.Join(d.Folders, ", ")})
	}
	p.table([]string{"ID", "DATE", "TITLE", "FOLDERS"}, rows)
	p.println(p.muted.Render(fmt.Sprintf("%d of %d meetings", len(list.Documents), list.TotalCount)))
}

func (p *printer) folders(folders []search.FolderListing) {
	if len(folders) == 0 {
		p.println("No folders.")
		return
	}
	rows := make([][]string, 0, len(folders))
	for _, f := range folders {
		rows = append(rows, []string{f.Name, fmt.Sprint(f.Count)})
	}
	p.table([]string{"FOLDER", "MEETINGS"}, rows)
}

func (p *printer) themes(themes []search.ThemeListing) {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{t.ID, t.Name, fmt.Sprint(t.DocumentCount), fmt.Sprint(t.TotalEvidenceCount)})
	}
	p.table([]string{"ID", "NAME", "MEETINGS", "EVIDENCE"}, rows)
}

func (p *printer) imported(paths map[string]string) {
	p.printf("Wrote %s\n", paths["notes"])
	if t, ok := paths["transcript"]; ok {
		p.printf("Wrote %s\n", t)
	}
}

// traceMonitor reports search stages and timings.
type traceMonitor struct {
	w     io.Writer
	start time.Time
}

var _ search.SearchMonitor = (*traceMonitor)(nil)

func (m *traceMonitor) Start(query string) {
	m.start = time.Now()
	fmt.Fprintf(m.w, "query: %q\n", query)
}

func (m *traceMonitor) AfterQueryEmbedding(dimensions int) {
	fmt.Fprintf(m.w, "embedded query: %d dimensions (%s)\n", dimensions, time.Since(m.start).Round(time.Millisecond))
}

func (m *traceMonitor) AfterDocumentSearch(matches []*core.DocumentMatch) {
	fmt.Fprintf(m.w, "document search: %d matches (%s)\n", len(matches), time.Since(m.start).Round(time.Millisecond))
	for _, match := range matches {
		fmt.Fprintf(m.w, "  %s distance=%.4f\n", match.Document.ID, match.Distance)
	}
}

func (m *traceMonitor) Finish(response *search.SearchResponse) {
	fmt.Fprintf(m.w, "done: %d results (%s)\n", len(response.Results), time.Since(m.start).Round(time.Millisecond))
}
