// Package indexing rebuilds the search index from exported meetings.
//
// For every meeting, in order, the Indexer obtains insights (from the
// language model, or from the notes alone when extraction is skipped),
// embeds the summary, each theme and each key quote in a single ordered
// batch, and prepares one document row plus its chunks. Only when every
// meeting has been prepared is the store reset and written, documents first
// and chunks second.
//
// Bulk mode runs extractions ahead of the embedding loop in bounded windows
// on an ants pool, pausing between windows to stay under upstream rate
// limits.
package indexing
