package suite

import (
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// ConvFloat is a single-channel 2x2 convolution averaging a 3x3 image.
func ConvFloat() *fixture.Fixture {
	b := fixture.NewModel("conv_float")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 3, 3, 1)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, tensor.Shape{1, 2, 2, 1}, .25, .25, .25, .25)
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, tensor.Shape{1}, 0)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 2, 2, 1)

	b.Operation("CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		act).To(output)

	b.Example(
		fixture.Values{i1: {
			1.0, 1.0, 1.0,
			1.0, 0.5, 1.0,
			1.0, 1.0, 1.0}},
		fixture.Values{output: {.875, .875, .875, .875}},
	)
	return b.MustBuild()
}
