package fixture

// Fixture is a model together with its examples.
type Fixture struct {
	model    *Model
	examples []Example
}

// Name returns the fixture name, which is also the model name.
func (f *Fixture) Name() string {
	return f.model.Name()
}

// Model returns the model graph.
func (f *Fixture) Model() *Model {
	return f.model
}

// Examples returns copies of the examples in declaration order.
func (f *Fixture) Examples() []Example {
	out := make([]Example, len(f.examples))
	for i, e := range f.examples {
		out[i] = e.Clone()
	}
	return out
}

// NumExamples returns the number of examples.
func (f *Fixture) NumExamples() int {
	return len(f.examples)
}

// OperationTypes returns the operation names in declaration order.
func (f *Fixture) OperationTypes() []string {
	ops := f.model.operations
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Type
	}
	return out
}
