// Package tuner - session dispatcher.
//
// Session is the thin loop a driver would otherwise hand-roll around a
// Searcher: fetch the next index, hand it to the evaluator, report the
// cost back, advance. It owns nothing about the space or searcher beyond
// what the contracts in space.Space and search.Searcher already expose.
package tuner

import (
	"errors"

	"github.com/katalvlaran/kerntune/search"
	"github.com/katalvlaran/kerntune/space"
)

// ErrNilEvaluator is returned by NewSession when eval is nil.
var ErrNilEvaluator = errors.New("tuner: nil evaluate function")

// Session drives a single tuning run: a built Space, a configured
// Searcher, and the evaluator supplied by the external runner.
type Session struct {
	sp   *space.Space
	s    search.Searcher
	eval EvaluateFunc

	visited int
}

// NewSession returns a Session ready to Run over sp using s, reporting
// costs computed by eval. Returns ErrNilEvaluator if eval is nil.
func NewSession(sp *space.Space, s search.Searcher, eval EvaluateFunc) (*Session, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}

	return &Session{sp: sp, s: s, eval: eval}, nil
}

// Run drives the searcher to completion: configuration(), evaluate,
// report(cost), next() - repeated until done() - and returns the
// accumulated Ranking sorted by ascending cost (infeasible points last, in
// visitation order).
func (sess *Session) Run() Ranking {
	var points []RankedPoint

	for !sess.s.Done() {
		idx := sess.s.Configuration()
		result := sess.eval(idx)
		cost := toCost(result)

		sess.s.Report(cost)
		points = append(points, RankedPoint{
			Configuration: sess.sp.At(idx),
			Cost:          cost,
		})
		sess.visited++

		sess.s.Next()
	}

	return newRanking(points)
}

// Visited returns the number of configurations evaluated so far.
func (sess *Session) Visited() int { return sess.visited }

// Searcher returns the underlying searcher, for callers that want
// progress via Budget()/Done() mid-run.
func (sess *Session) Searcher() search.Searcher { return sess.s }
