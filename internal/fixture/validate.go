package fixture

import (
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// validate checks declarations, graph structure and examples. It returns the
// first violation found.
func validate(m *Model, examples []Example) error {
	if m.name == "" {
		return errors.Wrap(ErrEmptyName, "model")
	}
	if err := validateOperands(m); err != nil {
		return err
	}
	if err := validateOperations(m); err != nil {
		return err
	}
	if err := checkAcyclic(m); err != nil {
		return err
	}
	return validateExamples(m, examples)
}

func validateOperands(m *Model) error {
	seen := make(map[string]bool, len(m.operands))
	for _, o := range m.operands {
		if o.Name == "" {
			return errors.Wrap(ErrEmptyName, "operand")
		}
		if seen[o.Name] {
			return errors.Wrapf(ErrDuplicateOperand, "operand %q", o.Name)
		}
		seen[o.Name] = true

		if !o.Type.Valid() {
			return errors.Wrapf(ErrInvalidType, "operand %q: %s", o.Name, o.Type)
		}
		if o.Type.IsScalar() && len(o.Shape) != 0 {
			return errors.Wrapf(ErrInvalidShape, "operand %q: scalar %s declared with shape %s", o.Name, o.Type, o.Shape)
		}
		if !o.Type.IsScalar() && len(o.Shape) == 0 {
			return errors.Wrapf(ErrInvalidShape, "operand %q: %s needs rank >= 1", o.Name, o.Type)
		}
		if err := o.Shape.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidShape, "operand %q: %v", o.Name, err)
		}

		switch {
		case o.Role == RoleParameter:
			if err := checkValues(o, o.Value); err != nil {
				return err
			}
		case o.Value != nil:
			return errors.Wrapf(ErrUnexpectedValue, "operand %q is an %s", o.Name, o.Role)
		}
	}
	return nil
}

// checkValues verifies count and representability of literal values for o.
func checkValues(o Operand, values []float64) error {
	if len(values) != o.NumElements() {
		return errors.Wrapf(ErrValueCount, "operand %q: shape %s needs %d values, got %d",
			o.Name, o.Shape, o.NumElements(), len(values))
	}
	for i, v := range values {
		switch o.Type {
		case TypeInt32, TypeTensorInt32:
			if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
				return errors.Wrapf(ErrInvalidValue, "operand %q: value %d (%v) is not an int32", o.Name, i, v)
			}
		case TypeUint32:
			if v != math.Trunc(v) || v < 0 || v > math.MaxUint32 {
				return errors.Wrapf(ErrInvalidValue, "operand %q: value %d (%v) is not a uint32", o.Name, i, v)
			}
		case TypeBool, TypeTensorBool8:
			if v != 0 && v != 1 {
				return errors.Wrapf(ErrInvalidValue, "operand %q: value %d (%v) is not a bool", o.Name, i, v)
			}
		case TypeFloat32, TypeTensorFloat32:
			if !math.IsInf(v, 0) && math.IsInf(float64(float32(v)), 0) {
				return errors.Wrapf(ErrInvalidValue, "operand %q: value %d (%v) overflows float32", o.Name, i, v)
			}
		case TypeFloat16, TypeTensorFloat16:
			// NaN and infinities are literal; only finite values that round to infinity are rejected.
			if !math.IsInf(v, 0) && !math.IsNaN(v) && float16.Fromfloat32(float32(v)).IsInf(0) {
				return errors.Wrapf(ErrInvalidValue, "operand %q: value %d (%v) overflows float16", o.Name, i, v)
			}
		}
	}
	return nil
}

// validateOperations checks references and edge consistency: every operand is
// defined by at most one operation, inputs and parameters are never defined,
// and every output or internal operand is defined.
func validateOperations(m *Model) error {
	if len(m.operations) == 0 {
		return errors.Wrapf(ErrEmptyModel, "model %q", m.name)
	}

	definedBy := make(map[OperandRef]int)
	for i, op := range m.operations {
		if op.Type == "" {
			return errors.Wrapf(ErrEmptyName, "operation %d", i)
		}
		if len(op.Outputs) == 0 {
			return errors.Wrapf(ErrEdgeConsistency, "operation %d (%s) has no outputs", i, op.Type)
		}
		for _, ref := range op.Inputs {
			if _, ok := m.index[ref]; !ok {
				return errors.Wrapf(ErrUndeclaredOperand, "operation %d (%s) input %q", i, op.Type, ref)
			}
		}
		for _, ref := range op.Outputs {
			idx, ok := m.index[ref]
			if !ok {
				return errors.Wrapf(ErrUndeclaredOperand, "operation %d (%s) output %q", i, op.Type, ref)
			}
			if role := m.operands[idx].Role; role == RoleInput || role == RoleParameter {
				return errors.Wrapf(ErrEdgeConsistency, "operation %d (%s) writes %s %q", i, op.Type, role, ref)
			}
			if prev, dup := definedBy[ref]; dup {
				return errors.Wrapf(ErrEdgeConsistency, "operand %q defined by operations %d and %d", ref, prev, i)
			}
			definedBy[ref] = i
		}
	}

	for _, o := range m.operands {
		if o.Role != RoleOutput && o.Role != RoleInternal {
			continue
		}
		if _, ok := definedBy[o.Ref()]; !ok {
			return errors.Wrapf(ErrEdgeConsistency, "%s %q is not defined by any operation", o.Role, o.Name)
		}
	}
	return nil
}

// checkAcyclic runs a depth-first search over operation -> consumer edges and
// fails on a back edge.
func checkAcyclic(m *Model) error {
	consumers := make(map[OperandRef][]int)
	for i, op := range m.operations {
		for _, ref := range op.Inputs {
			consumers[ref] = append(consumers[ref], i)
		}
	}

	const (
		unvisited = iota
		onStack
		done
	)
	state := make([]int, len(m.operations))

	var visit func(i int) bool
	visit = func(i int) bool {
		switch state[i] {
		case onStack:
			return false
		case done:
			return true
		}
		state[i] = onStack
		for _, out := range m.operations[i].Outputs {
			for _, next := range consumers[out] {
				if !visit(next) {
					return false
				}
			}
		}
		state[i] = done
		return true
	}

	for i := range m.operations {
		if !visit(i) {
			return errors.Wrapf(ErrCyclicGraph, "model %q: cycle through operation %d (%s)", m.name, i, m.operations[i].Type)
		}
	}
	return nil
}

func validateExamples(m *Model, examples []Example) error {
	if len(examples) == 0 {
		return errors.Wrapf(ErrNoExamples, "model %q", m.name)
	}
	for i, e := range examples {
		if err := validateExampleSide(m, i, "inputs", e.Inputs, RoleInput); err != nil {
			return err
		}
		if err := validateExampleSide(m, i, "outputs", e.Outputs, RoleOutput); err != nil {
			return err
		}
	}
	return nil
}

func validateExampleSide(m *Model, idx int, side string, values Values, role Role) error {
	for _, ref := range values.Refs() {
		o, ok := m.Operand(ref)
		if !ok {
			return errors.Wrapf(ErrUndeclaredOperand, "example %d %s: %q", idx, side, ref)
		}
		if o.Role != role {
			return errors.Wrapf(ErrExampleRole, "example %d %s: %q is an %s", idx, side, ref, o.Role)
		}
		if err := checkValues(o, values[ref]); err != nil {
			return errors.Wrapf(err, "example %d %s", idx, side)
		}
	}
	for _, o := range m.operands {
		if o.Role != role {
			continue
		}
		if _, ok := values[o.Ref()]; !ok {
			return errors.Wrapf(ErrMissingExampleValue, "example %d %s: %q", idx, side, o.Name)
		}
	}
	return nil
}
