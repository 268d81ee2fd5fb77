package config

// ParameterSpec declares one named discrete axis (space.Parameter).
type ParameterSpec struct {
	Name   string  `yaml:"name"`
	Values []int64 `yaml:"values"`
}

// ConstraintSpec declares one constraint from the closed kind set this
// package supports, over exactly two parameter names: Params[0] is the
// left-hand operand, Params[1] the right-hand one.
//
// Kinds:
//
//	divisible  - Params[0] % Params[1] == 0
//	equals     - Params[0] == Params[1]
//	lessEqual  - Params[0] <= Params[1]
//	lessThan   - Params[0] <  Params[1]
type ConstraintSpec struct {
	Kind   string   `yaml:"kind"`
	Params []string `yaml:"params"`
}

// ModifierSpec declares one space.ThreadModifier.
type ModifierSpec struct {
	// Target is "global" or "local".
	Target string `yaml:"target"`
	Axis   int    `yaml:"axis"`
	Param  string `yaml:"param"`
	// Op is "multiply" or "divide".
	Op string `yaml:"op"`
}

// GeometrySpec declares the base thread geometry and its modifiers
// (space.Geometry). Omitted entirely if the session has no geometry.
type GeometrySpec struct {
	BaseGlobal []uint64       `yaml:"baseGlobal"`
	BaseLocal  []uint64       `yaml:"baseLocal"`
	Modifiers  []ModifierSpec `yaml:"modifiers"`
}

// StrategySpec selects a search strategy and its options. Only the fields
// relevant to Name are read; the rest are ignored.
type StrategySpec struct {
	// Name is one of "full", "random", "annealing", "pso".
	Name string `yaml:"name"`

	Fraction       float64 `yaml:"fraction"`
	Seed           uint64  `yaml:"seed"`
	MaxTemperature float64 `yaml:"maxTemperature"`
	Swarms         int     `yaml:"swarms"`
	W              float64 `yaml:"w"`
	C1             float64 `yaml:"c1"`
	C2             float64 `yaml:"c2"`
}

// SessionSpec is the root YAML document.
type SessionSpec struct {
	Parameters  []ParameterSpec  `yaml:"parameters"`
	Constraints []ConstraintSpec `yaml:"constraints"`
	Geometry    *GeometrySpec    `yaml:"geometry"`
	Strategy    StrategySpec     `yaml:"strategy"`
}
