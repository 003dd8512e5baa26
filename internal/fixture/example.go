package fixture

import (
	"maps"
	"slices"
)

// Values maps operands to flat literal value sequences in row-major order.
type Values map[OperandRef][]float64

// Clone returns a deep copy. The copy of a nil map is empty, not nil.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for ref, values := range v {
		out[ref] = slices.Clone(values)
	}
	return out
}

// Refs returns the keys sorted by name.
func (v Values) Refs() []OperandRef {
	return slices.Sorted(maps.Keys(v))
}

// Example pairs input values with the expected output values.
type Example struct {
	Inputs  Values
	Outputs Values
}

// Clone returns a deep copy.
func (e Example) Clone() Example {
	return Example{Inputs: e.Inputs.Clone(), Outputs: e.Outputs.Clone()}
}
