package suite

import "github.com/born-ml/conformance/internal/fixture"

// ReluFloat applies a standalone RELU.
func ReluFloat() *fixture.Fixture {
	b := fixture.NewModel("relu_float")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 1)
	i2 := b.Output("op2", fixture.TypeTensorFloat32, 1, 2, 2, 1)

	b.Operation("RELU", i1).To(i2)

	b.Example(
		fixture.Values{i1: {-10.0, -0.5, 0.5, 10.0}},
		fixture.Values{i2: {0.0, 0.0, 0.5, 10.0}},
	)
	return b.MustBuild()
}
