// Package fixture describes operator conformance fixtures: a small model graph
// of typed operands and operations, plus examples pairing literal input values
// with the expected output values.
//
// Fixtures are pure data. They are built once through a ModelBuilder, validated
// by Build, and are read-only afterwards: every accessor returns a copy.
//
//	b := fixture.NewModel("depthwise_conv2d_float_large")
//	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
//	...
//	b.Operation("DEPTHWISE_CONV_2D", i1, f1, b1, pad0, pad0, pad0, pad0, stride, stride, cm, act).To(output)
//	b.Example(fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}}, fixture.Values{output: {110, 246}})
//	f, err := b.Build()
//
// Validation covers declarations and value counts only. Whether an output
// shape matches the operator's semantics is left to whoever executes the
// fixture.
package fixture
