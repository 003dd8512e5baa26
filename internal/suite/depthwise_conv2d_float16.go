package suite

import (
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// DepthwiseConv2DFloat16Large is DepthwiseConv2DFloatLarge in half precision.
// Every value is exactly representable as float16.
func DepthwiseConv2DFloat16Large() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float16_large")
	i1 := b.Input("op1", fixture.TypeTensorFloat16, 1, 2, 2, 2)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat16, tensor.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1)
	b1 := b.Parameter("op3", fixture.TypeTensorFloat16, tensor.Shape{2}, 100, 200)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat16, 1, 1, 1, 2)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		cm, act).To(output)

	b.Example(
		fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}},
		fixture.Values{output: {110, 246}},
	)
	return b.MustBuild()
}
