package suite

import (
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// ReshapeFloat flattens a 3x3 image into a row vector.
func ReshapeFloat() *fixture.Fixture {
	b := fixture.NewModel("reshape_float")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 1, 3, 3)
	i2 := b.Parameter("op2", fixture.TypeTensorInt32, tensor.Shape{2}, 1, 9)
	i3 := b.Output("op3", fixture.TypeTensorFloat32, 1, 9)

	b.Operation("RESHAPE", i1, i2).To(i3)

	b.Example(
		fixture.Values{i1: {1, 2, 3, 4, 5, 6, 7, 8, 9}},
		fixture.Values{i3: {1, 2, 3, 4, 5, 6, 7, 8, 9}},
	)
	return b.MustBuild()
}
