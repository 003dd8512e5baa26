package fixture

import "slices"

// Operation is one operator invocation: an NNAPI operation name, its ordered
// input operands and its output operands.
type Operation struct {
	Type    string
	Inputs  []OperandRef
	Outputs []OperandRef
}

// Clone returns a deep copy.
func (op Operation) Clone() Operation {
	op.Inputs = slices.Clone(op.Inputs)
	op.Outputs = slices.Clone(op.Outputs)
	return op
}

// Model is a validated, immutable model graph.
type Model struct {
	name       string
	operands   []Operand
	index      map[OperandRef]int
	operations []Operation
}

func newModel(name string, operands []Operand, operations []Operation) *Model {
	m := &Model{
		name:       name,
		operands:   make([]Operand, len(operands)),
		index:      make(map[OperandRef]int, len(operands)),
		operations: make([]Operation, len(operations)),
	}
	for i, o := range operands {
		m.operands[i] = o.Clone()
		if _, dup := m.index[o.Ref()]; !dup {
			m.index[o.Ref()] = i
		}
	}
	for i, op := range operations {
		m.operations[i] = op.Clone()
	}
	return m
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Operands returns every declaration in declaration order.
func (m *Model) Operands() []Operand {
	out := make([]Operand, len(m.operands))
	for i, o := range m.operands {
		out[i] = o.Clone()
	}
	return out
}

// Operand looks up a declaration by reference.
func (m *Model) Operand(ref OperandRef) (Operand, bool) {
	i, ok := m.index[ref]
	if !ok {
		return Operand{}, false
	}
	return m.operands[i].Clone(), true
}

// Operations returns the operator invocations in declaration order.
func (m *Model) Operations() []Operation {
	out := make([]Operation, len(m.operations))
	for i, op := range m.operations {
		out[i] = op.Clone()
	}
	return out
}

// Inputs returns the input declarations in declaration order.
func (m *Model) Inputs() []Operand {
	return m.withRole(RoleInput)
}

// Outputs returns the output declarations in declaration order.
func (m *Model) Outputs() []Operand {
	return m.withRole(RoleOutput)
}

// Parameters returns the parameter declarations in declaration order.
func (m *Model) Parameters() []Operand {
	return m.withRole(RoleParameter)
}

func (m *Model) withRole(role Role) []Operand {
	var out []Operand
	for _, o := range m.operands {
		if o.Role == role {
			out = append(out, o.Clone())
		}
	}
	return out
}

// ParameterBytes is the total storage size of all parameters.
func (m *Model) ParameterBytes() int {
	total := 0
	for _, o := range m.operands {
		if o.Role == RoleParameter {
			total += o.ByteSize()
		}
	}
	return total
}
