package layout

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceDocument is one exported meeting as read from disk.
type SourceDocument struct {
	ID            string
	Title         string
	CreatedAt     time.Time
	UpdatedAt     time.Time // zero when absent
	Folders       []string
	Notes         string
	Transcript    string
	HasTranscript bool
	SourceName    string // notes file name without extension; set by ReadDocuments
}

type frontMatter struct {
	ID        string   `yaml:"id,omitempty"`
	Title     string   `yaml:"title,omitempty"`
	CreatedAt string   `yaml:"created_at,omitempty"`
	UpdatedAt string   `yaml:"updated_at,omitempty"`
	Folders   []string `yaml:"folders,omitempty"`
}

const fmDelimiter = "---"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// splitFrontMatter separates a leading YAML block delimited by "---" lines
// from the Markdown body. Content without a block is all body.
func splitFrontMatter(content string) (meta, body string, ok bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fmDelimiter+"\n") {
		return "", content, false
	}
	rest := content[len(fmDelimiter)+1:]

	if strings.HasPrefix(rest, fmDelimiter+"\n") || rest == fmDelimiter {
		return "", strings.TrimPrefix(strings.TrimPrefix(rest, fmDelimiter), "\n"), true
	}
	end := strings.Index(rest, "\n"+fmDelimiter+"\n")
	if end == -1 {
		if strings.HasSuffix(rest, "\n"+fmDelimiter) {
			return rest[:len(rest)-len(fmDelimiter)-1], "", true
		}
		return "", content, false
	}
	return rest[:end], rest[end+len(fmDelimiter)+2:], true
}

// ParseNotes decodes a notes file. fallbackTitle is used when the front
// matter has no title, and the id defaults to the sanitized title.
func ParseNotes(content, fallbackTitle string) (SourceDocument, error) {
	var doc SourceDocument

	meta, body, ok := splitFrontMatter(content)
	var fm frontMatter
	if ok && strings.TrimSpace(meta) != "" {
		if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
			return doc, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
		}
	}

	created, err := parseTime(fm.CreatedAt)
	if err != nil {
		return doc, fmt.Errorf("%w: created_at: %w", ErrInvalidFrontMatter, err)
	}
	updated, err := parseTime(fm.UpdatedAt)
	if err != nil {
		return doc, fmt.Errorf("%w: updated_at: %w", ErrInvalidFrontMatter, err)
	}

	doc.Title = strings.TrimSpace(fm.Title)
	if doc.Title == "" {
		doc.Title = fallbackTitle
	}
	doc.ID = strings.TrimSpace(fm.ID)
	if doc.ID == "" {
		doc.ID = Sanitize(doc.Title)
	}
	doc.CreatedAt = created
	doc.UpdatedAt = updated
	doc.Notes = strings.TrimSpace(body)
	for _, f := range fm.Folders {
		if f = strings.TrimSpace(f); f != "" {
			doc.Folders = append(doc.Folders, f)
		}
	}
	return doc, nil
}

// FormatNotes renders doc as a notes file with front matter.
func FormatNotes(doc SourceDocument) (string, error) {
	fm := frontMatter{
		ID:        doc.ID,
		Title:     doc.Title,
		CreatedAt: formatTime(doc.CreatedAt),
		UpdatedAt: formatTime(doc.UpdatedAt),
		Folders:   doc.Folders,
	}
	meta, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	b.WriteString(fmDelimiter + "\n")
	b.Write(meta)
	b.WriteString(fmDelimiter + "\n")
	if doc.Notes != "" {
		b.WriteString("\n")
		b.WriteString(doc.Notes)
		if !strings.HasSuffix(doc.Notes, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// ReadDocuments loads every meeting under the export root, oldest first and
// then by id.
func ReadDocuments(root string) ([]SourceDocument, error) {
	return New(root).ReadDocuments()
}

func (l Layout) ReadDocuments() ([]SourceDocument, error) {
	entries, err := os.ReadDir(l.NotesDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExportDir, l.Root)
	}
	if err != nil {
		return nil, err
	}

	docs := make([]SourceDocument, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != notesExt {
			continue
		}
		path := filepath.Join(l.NotesDir(), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		stem := strings.TrimSuffix(entry.Name(), notesExt)
		doc, err := ParseNotes(string(data), stem)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, dup := seen[doc.ID]; dup {
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateDocument, doc.ID, prev, path)
		}
		seen[doc.ID] = path

		doc.SourceName = stem
		transcript, ok, err := l.FindTranscript(doc.Title, stem)
		if err != nil {
			return nil, err
		}
		doc.Transcript = strings.TrimSpace(transcript)
		doc.HasTranscript = ok && doc.Transcript != ""

		docs = append(docs, doc)
	}

	slices.SortStableFunc(docs, func(a, b SourceDocument) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return docs, nil
}

// WriteDocument stores doc's notes and, when present, its transcript under
// paths derived from its title.
func (l Layout) WriteDocument(doc SourceDocument) error {
	title := doc.Title
	if title == "" {
		title = doc.ID
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	doc.Title = title

	notes, err := FormatNotes(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.NotesDir(), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(l.NotesPath(title), []byte(notes), 0o644); err != nil {
		return err
	}

	if doc.Transcript == "" {
		return nil
	}
	if err := os.MkdirAll(l.TranscriptsDir(), 0o755); err != nil {
		return err
	}
	transcript := doc.Transcript
	if !strings.HasSuffix(transcript, "\n") {
		transcript += "\n"
	}
	return os.WriteFile(l.TranscriptPath(title), []byte(transcript), 0o644)
}
