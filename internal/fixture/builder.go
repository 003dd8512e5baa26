package fixture

import (
	"github.com/pkg/errors"

	"github.com/born-ml/conformance/internal/tensor"
)

// ModelBuilder accumulates declarations, operations and examples for one
// fixture. Build validates the result and returns an immutable Fixture; the
// builder itself keeps no reference to it.
type ModelBuilder struct {
	name       string
	operands   []Operand
	operations []Operation
	examples   []Example
}

// NewModel starts a fixture with the given name.
func NewModel(name string) *ModelBuilder {
	return &ModelBuilder{name: name}
}

func (b *ModelBuilder) declare(o Operand) OperandRef {
	b.operands = append(b.operands, o.Clone())
	return o.Ref()
}

// Input declares a model input. Its values come from examples.
func (b *ModelBuilder) Input(name string, typ OperandType, shape ...int) OperandRef {
	return b.declare(Operand{Name: name, Role: RoleInput, Type: typ, Shape: tensor.Shape(shape)})
}

// Output declares a model output. Its expected values come from examples.
func (b *ModelBuilder) Output(name string, typ OperandType, shape ...int) OperandRef {
	return b.declare(Operand{Name: name, Role: RoleOutput, Type: typ, Shape: tensor.Shape(shape)})
}

// Internal declares an intermediate operand produced and consumed inside the graph.
func (b *ModelBuilder) Internal(name string, typ OperandType, shape ...int) OperandRef {
	return b.declare(Operand{Name: name, Role: RoleInternal, Type: typ, Shape: tensor.Shape(shape)})
}

// Parameter declares a constant operand with literal values in row-major order.
func (b *ModelBuilder) Parameter(name string, typ OperandType, shape tensor.Shape, values ...float64) OperandRef {
	if values == nil {
		values = []float64{}
	}
	return b.declare(Operand{Name: name, Role: RoleParameter, Type: typ, Shape: shape, Value: values})
}

// Int32Scalar declares an INT32 scalar parameter.
func (b *ModelBuilder) Int32Scalar(name string, v int32) OperandRef {
	return b.Parameter(name, TypeInt32, nil, float64(v))
}

// Float32Scalar declares a FLOAT32 scalar parameter.
func (b *ModelBuilder) Float32Scalar(name string, v float32) OperandRef {
	return b.Parameter(name, TypeFloat32, nil, float64(v))
}

// BoolScalar declares a BOOL scalar parameter.
func (b *ModelBuilder) BoolScalar(name string, v bool) OperandRef {
	value := 0.0
	if v {
		value = 1
	}
	return b.Parameter(name, TypeBool, nil, value)
}

// OperationBuilder is an operation waiting for its outputs.
type OperationBuilder struct {
	model *ModelBuilder
	op    Operation
}

// Operation starts an operator invocation with ordered inputs. Call To to
// record it.
func (b *ModelBuilder) Operation(opType string, inputs ...OperandRef) *OperationBuilder {
	return &OperationBuilder{
		model: b,
		op:    Operation{Type: opType, Inputs: append([]OperandRef(nil), inputs...)},
	}
}

// To sets the outputs and records the operation on the model.
func (ob *OperationBuilder) To(outputs ...OperandRef) *ModelBuilder {
	ob.op.Outputs = append([]OperandRef(nil), outputs...)
	ob.model.operations = append(ob.model.operations, ob.op.Clone())
	return ob.model
}

// Example attaches one (inputs, expected outputs) pair.
func (b *ModelBuilder) Example(inputs, outputs Values) *ModelBuilder {
	b.examples = append(b.examples, Example{Inputs: inputs.Clone(), Outputs: outputs.Clone()})
	return b
}

// Build validates the declarations and returns the fixture.
func (b *ModelBuilder) Build() (*Fixture, error) {
	m := newModel(b.name, b.operands, b.operations)
	examples := make([]Example, len(b.examples))
	for i, e := range b.examples {
		examples[i] = e.Clone()
	}
	if err := validate(m, examples); err != nil {
		return nil, errors.WithMessagef(err, "fixture %q", b.name)
	}
	return &Fixture{model: m, examples: examples}, nil
}

// MustBuild is Build for literal fixtures; it panics on validation errors.
func (b *ModelBuilder) MustBuild() *Fixture {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
