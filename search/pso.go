package search

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/kerntune/space"
)

// PSOOptions configures the particle-swarm searcher.
type PSOOptions struct {
	// Fraction is the proportion of the space the searcher budgets for,
	// in (0,1].
	Fraction float64
	// Swarms is the number of particles P, a positive integer.
	Swarms int
	// W is the inertia weight, in [0,1].
	W float64
	// C1 is the cognitive weight, a positive double.
	C1 float64
	// C2 is the social weight, a positive double, with C1+C2 <= 4.
	C2 float64
	// Seed drives every random draw; 0 maps to a fixed default stream.
	Seed uint64
}

// Validate checks Fraction, Swarms, W, C1 and C2 are within their
// contractual bounds.
func (o PSOOptions) Validate() error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return ErrInvalidStrategyOptions
	}
	if o.Swarms < 1 {
		return ErrInvalidStrategyOptions
	}
	if o.W < 0 || o.W > 1 {
		return ErrInvalidStrategyOptions
	}
	if o.C1 <= 0 || o.C2 <= 0 || o.C1+o.C2 > 4 {
		return ErrInvalidStrategyOptions
	}

	return nil
}

// particle is a single agent in the swarm: a point in parameter-index
// space, a real-valued velocity of the same arity, and a remembered
// personal best.
type particle struct {
	position []int
	velocity []float64
	index    int // space index decoded from position

	pbestPos  []int
	pbestCost float64
}

// PSOSearcher is a population of particles with velocity-biased
// coordinate resampling.
type PSOSearcher struct {
	sp     *space.Space
	rng    *rand.Rand
	budget int

	w, c1, c2 float64

	particles   []particle
	turn        int
	evaluations int

	gbestPos  []int
	gbestCost float64

	lastCost Cost
	history  history
}

// NewPSO returns a PSO searcher over sp with opts.Swarms particles,
// seeded by opts.Seed.
func NewPSO(sp *space.Space, opts PSOOptions) (*PSOSearcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := sp.Len()
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget < opts.Swarms {
		budget = opts.Swarms
	}

	rng := rngFromSeed(opts.Seed)
	numParams := sp.Registry().Len()

	particles := make([]particle, opts.Swarms)
	for i := range particles {
		idx := rng.Intn(n)
		particles[i] = particle{
			position:  sp.Positions(idx),
			velocity:  make([]float64, numParams),
			index:     idx,
			pbestCost: math.Inf(1),
		}
	}

	return &PSOSearcher{
		sp:        sp,
		rng:       rng,
		budget:    budget,
		w:         opts.W,
		c1:        opts.C1,
		c2:        opts.C2,
		particles: particles,
		gbestCost: math.Inf(1),
	}, nil
}

// Configuration returns the index of the particle whose turn it is.
func (p *PSOSearcher) Configuration() int {
	return p.particles[p.turn].index
}

// Report records the measured cost of the current particle and updates
// personal/global bests. Velocity and position updates happen in Next,
// per the Searcher contract.
func (p *PSOSearcher) Report(cost Cost) {
	cur := &p.particles[p.turn]
	p.history.record(cur.index, cost)
	p.lastCost = cost

	obj := cost.asObjective()
	if obj < cur.pbestCost {
		cur.pbestCost = obj
		cur.pbestPos = append([]int(nil), cur.position...)
	}
	if obj < p.gbestCost {
		p.gbestCost = obj
		p.gbestPos = append([]int(nil), cur.position...)
	}
}

// Next updates the current particle's velocity and position
// coordinate-wise, resamples it if the result is infeasible, then
// advances to the next particle round-robin.
func (p *PSOSearcher) Next() {
	cur := &p.particles[p.turn]

	for i := range cur.position {
		pbest := float64(cur.position[i])
		if cur.pbestPos != nil {
			pbest = float64(cur.pbestPos[i])
		}
		gbest := float64(cur.position[i])
		if p.gbestPos != nil {
			gbest = float64(p.gbestPos[i])
		}

		x := float64(cur.position[i])
		r1 := p.rng.Float64()
		r2 := p.rng.Float64()
		cur.velocity[i] = p.w*cur.velocity[i] + p.c1*r1*(pbest-x) + p.c2*r2*(gbest-x)

		next := math.Round(x + cur.velocity[i])
		maxPos := float64(p.sp.Registry().At(i).Len() - 1)
		if next < 0 {
			next = 0
		}
		if next > maxPos {
			next = maxPos
		}
		cur.position[i] = int(next)
	}

	if idx, ok := p.sp.IndexOfPositions(cur.position); ok {
		cur.index = idx
	} else {
		// Infeasible: the velocity update walked the particle outside the
		// feasible space. Resample uniformly from the feasible space and
		// reset velocity to zero rather than clamping back toward the old
		// position, so the particle explores instead of sticking to the
		// constraint boundary.
		idx := p.rng.Intn(p.sp.Len())
		cur.position = p.sp.Positions(idx)
		cur.index = idx
		for i := range cur.velocity {
			cur.velocity[i] = 0
		}
	}

	p.evaluations++
	p.turn = (p.turn + 1) % len(p.particles)
}

// Done reports whether the declared budget has been exhausted.
func (p *PSOSearcher) Done() bool { return p.evaluations >= p.budget }

// Budget returns the declared target number of evaluations.
func (p *PSOSearcher) Budget() int { return p.budget }

// GlobalBest returns the swarm-wide best configuration index and cost
// found so far. ok is false until at least one feasible report has
// landed.
func (p *PSOSearcher) GlobalBest() (index int, cost float64, ok bool) {
	if p.gbestPos == nil {
		return 0, 0, false
	}
	idx, found := p.sp.IndexOfPositions(p.gbestPos)
	if !found {
		return 0, 0, false
	}

	return idx, p.gbestCost, true
}

// History returns the append-only record of visited indices and costs.
func (p *PSOSearcher) History() []MeasuredPoint {
	return p.history.Points()
}

var _ Searcher = (*PSOSearcher)(nil)
