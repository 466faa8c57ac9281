package layout

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	notesDir       = "notes"
	transcriptsDir = "transcripts"
	stateDir       = ".minutes"
	indexName      = "index"

	notesExt      = ".md"
	transcriptExt = ".txt"

	// MaxNameLength caps sanitized file names, in runes.
	MaxNameLength = 100

	untitled = "untitled"
)

// Layout resolves paths inside an export directory.
type Layout struct {
	Root string
}

// New returns the layout rooted at root.
func New(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) NotesDir() string {
	return filepath.Join(l.Root, notesDir)
}

func (l Layout) TranscriptsDir() string {
	return filepath.Join(l.Root, transcriptsDir)
}

// IndexPath is where the badger database lives.
func (l Layout) IndexPath() string {
	return filepath.Join(l.Root, stateDir, indexName)
}

func (l Layout) NotesPath(title string) string {
	return filepath.Join(l.NotesDir(), Sanitize(title)+notesExt)
}

func (l Layout) TranscriptPath(title string) string {
	return filepath.Join(l.TranscriptsDir(), Sanitize(title)+transcriptExt)
}

// ReadTranscript loads the transcript stored for title. The boolean is false
// when no transcript file exists.
func (l Layout) ReadTranscript(title string) (string, bool, error) {
	data, err := os.ReadFile(l.TranscriptPath(title))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// FindTranscript resolves a meeting's transcript: the file named after its
// title first, then the one named after its notes file. name is the notes
// file name without extension and may be empty.
func (l Layout) FindTranscript(title, name string) (string, bool, error) {
	text, ok, err := l.ReadTranscript(title)
	if err != nil || ok || name == "" || Sanitize(name) == Sanitize(title) {
		return text, ok, err
	}
	return l.ReadTranscript(name)
}

// Sanitize turns a title into a portable file name. Letters, digits, spaces,
// '-' and '_' are kept, everything else becomes '_'. Runs of whitespace
// collapse to one space and the result is trimmed and capped at
// MaxNameLength runes. An empty result becomes "untitled".
func Sanitize(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	space := false
	for _, r := range title {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
		default:
			r = '_'
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}

	name := b.String()
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = strings.TrimSpace(string(runes[:MaxNameLength]))
	}
	if name == "" {
		return untitled
	}
	return name
}
