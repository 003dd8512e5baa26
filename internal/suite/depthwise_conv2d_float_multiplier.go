package suite

import (
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// DepthwiseConv2DFloatMultiplier2 expands each of two input channels into two
// output channels with a 1x1 filter.
func DepthwiseConv2DFloatMultiplier2() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float_multiplier2")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 1, 1, 2)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, tensor.Shape{1, 1, 1, 4}, 1, 2, 3, 4) // depth_out = 4
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, tensor.Shape{4}, 0, 0, 0, 0)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 2)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 4)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		cm, act).To(output)

	// Channels 0,1 read input channel 0; channels 2,3 read input channel 1.
	b.Example(
		fixture.Values{i1: {1, 2}},
		fixture.Values{output: {1, 2, 6, 8}},
	)
	return b.MustBuild()
}
