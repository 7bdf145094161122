package search

import "github.com/pantrylabs/foodsearch/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query core.Query)
	AfterLexicalSearch(products []*core.Product)
	AfterFuzzyRescore(products []*core.Product)
	AfterSemanticSearch(hits []core.SemanticHit)
	Finish(report *core.Report)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Query)                       {}
func (n *noopMonitor) AfterLexicalSearch(_ []*core.Product)     {}
func (n *noopMonitor) AfterFuzzyRescore(_ []*core.Product)      {}
func (n *noopMonitor) AfterSemanticSearch(_ []core.SemanticHit) {}
func (n *noopMonitor) Finish(_ *core.Report)                    {}
