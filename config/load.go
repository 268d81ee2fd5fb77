package config

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kerntune/search"
	"github.com/katalvlaran/kerntune/space"
)

// Loaded is the built product of one YAML document: a feasible Space, a
// configured Searcher, and the thread-geometry model if the document
// declared one.
type Loaded struct {
	Space    *space.Space
	Searcher search.Searcher
	Geometry *space.Geometry // nil if the document has no geometry section
}

// Load decodes r as a SessionSpec and builds the parameter registry,
// constraint set, optional thread geometry, and searcher it describes.
//
// Every structural problem in the document - a missing name, an unknown
// constraint kind, an unknown parameter referenced by a constraint or
// modifier, an unknown strategy name - is collected into a single
// *multierror.Error rather than stopping at the first one, so a caller can
// fix a whole document in one pass. Invalid strategy options and an empty
// search space are detected only once the document has none of those
// problems, and are returned on their own.
func Load(r io.Reader) (*Loaded, error) {
	var spec SessionSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	var result *multierror.Error

	reg := space.NewRegistry()
	for _, p := range spec.Parameters {
		if p.Name == "" || len(p.Values) == 0 {
			result = multierror.Append(result, fmt.Errorf("%w: parameter with empty name or values", ErrMissingField))

			continue
		}
		if err := reg.AddParameter(p.Name, p.Values); err != nil {
			result = multierror.Append(result, fmt.Errorf("parameter %q: %w", p.Name, err))
		}
	}

	cs := space.NewConstraintSet(reg)
	for _, c := range spec.Constraints {
		if len(c.Params) != 2 {
			result = multierror.Append(result, fmt.Errorf("%w: constraint %q needs exactly two params", ErrMissingField, c.Kind))

			continue
		}

		pred, err := buildPredicate(c.Kind)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("constraint %q: %w", c.Kind, err))

			continue
		}

		if err := cs.AddConstraint(c.Params, pred); err != nil {
			result = multierror.Append(result, fmt.Errorf("constraint %q: %w", c.Kind, err))
		}
	}

	var geom *space.Geometry
	if spec.Geometry != nil {
		var err error
		geom, err = buildGeometry(reg, *spec.Geometry)
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	switch spec.Strategy.Name {
	case "full", "random", "annealing", "pso":
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec.Strategy.Name))
	}

	if result.ErrorOrNil() != nil {
		return nil, result.ErrorOrNil()
	}

	sp, err := space.Build(reg, cs)
	if err != nil {
		return nil, err
	}

	searcher, err := buildSearcher(sp, spec.Strategy)
	if err != nil {
		return nil, err
	}

	return &Loaded{Space: sp, Searcher: searcher, Geometry: geom}, nil
}

// buildPredicate maps a closed-set constraint kind to a two-argument
// space.Predicate (config/doc.go documents the kind set).
func buildPredicate(kind string) (space.Predicate, error) {
	switch kind {
	case "divisible":
		return func(values []int64) bool { return values[0]%values[1] == 0 }, nil
	case "equals":
		return func(values []int64) bool { return values[0] == values[1] }, nil
	case "lessEqual":
		return func(values []int64) bool { return values[0] <= values[1] }, nil
	case "lessThan":
		return func(values []int64) bool { return values[0] < values[1] }, nil
	default:
		return nil, ErrUnknownConstraintKind
	}
}

// buildGeometry constructs a space.Geometry from a GeometrySpec,
// collecting every modifier error into a single multierror.
func buildGeometry(reg *space.Registry, gs GeometrySpec) (*space.Geometry, error) {
	geom, err := space.NewGeometry(reg, gs.BaseGlobal, gs.BaseLocal)
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	var result *multierror.Error
	for _, m := range gs.Modifiers {
		target, err := parseTarget(m.Target)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("modifier %q: %w", m.Param, err))

			continue
		}
		op, err := parseOperator(m.Op)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("modifier %q: %w", m.Param, err))

			continue
		}

		if err := geom.AddModifier(space.ThreadModifier{
			Target: target,
			Axis:   m.Axis,
			Param:  m.Param,
			Op:     op,
		}); err != nil {
			result = multierror.Append(result, fmt.Errorf("modifier %q: %w", m.Param, err))
		}
	}

	if result.ErrorOrNil() != nil {
		return nil, result.ErrorOrNil()
	}

	return geom, nil
}

func parseTarget(s string) (space.Target, error) {
	switch s {
	case "global":
		return space.Global, nil
	case "local":
		return space.Local, nil
	default:
		return 0, fmt.Errorf("%w: target %q", ErrMissingField, s)
	}
}

func parseOperator(s string) (space.Operator, error) {
	switch s {
	case "multiply":
		return space.Multiply, nil
	case "divide":
		return space.Divide, nil
	default:
		return 0, fmt.Errorf("%w: op %q", ErrMissingField, s)
	}
}

// buildSearcher dispatches spec.Strategy.Name to the matching
// search.StrategyOptions and constructs the searcher via search.NewSearcher.
func buildSearcher(sp *space.Space, st StrategySpec) (search.Searcher, error) {
	switch st.Name {
	case "full":
		return search.NewSearcher(sp, search.FullOptions{})
	case "random":
		return search.NewSearcher(sp, search.RandomOptions{Fraction: st.Fraction, Seed: st.Seed})
	case "annealing":
		return search.NewSearcher(sp, search.AnnealingOptions{
			Fraction: st.Fraction, MaxTemperature: st.MaxTemperature, Seed: st.Seed,
		})
	case "pso":
		return search.NewSearcher(sp, search.PSOOptions{
			Fraction: st.Fraction, Swarms: st.Swarms, W: st.W, C1: st.C1, C2: st.C2, Seed: st.Seed,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, st.Name)
	}
}
