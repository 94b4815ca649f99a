package search

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterStoreSearch(results []*Result)
	AfterIndexSearch(results []*Result)
	AfterMerge(results []*Result)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)              {}
func (n *noopMonitor) AfterStoreSearch(_ []*Result) {}
func (n *noopMonitor) AfterIndexSearch(_ []*Result) {}
func (n *noopMonitor) AfterMerge(_ []*Result)       {}
func (n *noopMonitor) Finish(_ []*Result)           {}
