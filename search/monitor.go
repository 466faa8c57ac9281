package search

import "github.com/poiesic/minutes/core"

// SearchMonitor observes the stages of a free-text search.
type SearchMonitor interface {
	Start(query string)
	AfterQueryEmbedding(dimensions int)
	AfterDocumentSearch(matches []*core.DocumentMatch)
	Finish(response *SearchResponse)
}

type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)                   {}
func (n *noopMonitor) AfterDocumentSearch(_ []*core.DocumentMatch) {}
func (n *noopMonitor) Finish(_ *SearchResponse)                    {}
