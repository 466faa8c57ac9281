package layout

import "errors"

var (
	// ErrNotExportDir is returned when the root has no notes directory.
	ErrNotExportDir = errors.New("not an export directory")

	// ErrInvalidFrontMatter is returned when a notes file has malformed metadata.
	ErrInvalidFrontMatter = errors.New("invalid front matter")

	// ErrDuplicateDocument is returned when two notes files share an id.
	ErrDuplicateDocument = errors.New("duplicate document id")

	// ErrEmptyTitle is returned when writing a document without a title or id.
	ErrEmptyTitle = errors.New("document needs a title or id")
)
