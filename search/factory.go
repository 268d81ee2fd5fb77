package search

import "github.com/katalvlaran/kerntune/space"

// StrategyOptions is implemented by every strategy's options type
// (FullOptions, RandomOptions, AnnealingOptions, PSOOptions) and is the
// factory's dispatch key: the tag and the options are one value here,
// since each strategy has a distinct options shape and the type itself
// identifies which searcher to build.
type StrategyOptions interface {
	newSearcher(sp *space.Space) (Searcher, error)
}

// FullOptions carries no configuration: the full searcher has no tunable
// parameters beyond the space itself.
type FullOptions struct{}

func (FullOptions) newSearcher(sp *space.Space) (Searcher, error) {
	return NewFull(sp), nil
}

func (o RandomOptions) newSearcher(sp *space.Space) (Searcher, error) {
	return NewRandom(sp, o)
}

func (o AnnealingOptions) newSearcher(sp *space.Space) (Searcher, error) {
	return NewAnnealing(sp, o)
}

func (o PSOOptions) newSearcher(sp *space.Space) (Searcher, error) {
	return NewPSO(sp, o)
}

// NewSearcher builds the Searcher selected by opts over sp. It is the
// single entry point a driver needs after a Space has been built.
func NewSearcher(sp *space.Space, opts StrategyOptions) (Searcher, error) {
	return opts.newSearcher(sp)
}
