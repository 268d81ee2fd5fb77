package search

import "github.com/katalvlaran/kerntune/space"

// FullSearcher walks every index 0..N-1 of the space in order.
type FullSearcher struct {
	sp      *space.Space
	cursor  int
	history history
}

// NewFull returns a searcher that exhaustively visits every configuration
// in sp, in index order. Budget() == sp.Len().
func NewFull(sp *space.Space) *FullSearcher {
	return &FullSearcher{sp: sp}
}

// Configuration returns the index to evaluate next.
func (f *FullSearcher) Configuration() int { return f.cursor }

// Report records the measured cost of the current configuration.
func (f *FullSearcher) Report(cost Cost) {
	f.history.record(f.cursor, cost)
}

// Next advances to the following index.
func (f *FullSearcher) Next() {
	f.cursor++
}

// Done reports whether every index has been emitted.
func (f *FullSearcher) Done() bool {
	return f.cursor >= f.sp.Len()
}

// Budget returns the space size.
func (f *FullSearcher) Budget() int {
	return f.sp.Len()
}

// History returns the append-only record of visited indices and costs.
func (f *FullSearcher) History() []MeasuredPoint {
	return f.history.Points()
}

var _ Searcher = (*FullSearcher)(nil)
