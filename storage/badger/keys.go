package badger

// Key prefixes for the two tables
const (
	documentPrefix = "docrec:"
	chunkPrefix    = "chkrec:"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id string) []byte {
	return []byte(documentPrefix + id)
}

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id string) []byte {
	return []byte(chunkPrefix + id)
}
