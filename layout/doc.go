// Package layout maps meetings to files in an export directory.
//
// An export root R holds:
//
//	R/notes/<title>.md         Markdown notes with YAML front matter
//	R/transcripts/<title>.txt  speaker-tagged transcript, one utterance per line
//	R/.minutes/index           the search index
//
// File names are derived from the meeting title with Sanitize, so a
// transcript can be located from an indexed document's title alone.
package layout
