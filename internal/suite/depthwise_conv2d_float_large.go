package suite

import (
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// DepthwiseConv2DFloatLarge is a 2x2 depthwise convolution over a 2x2 image
// with two channels: each output channel sums (input * filter) over the whole
// window and adds its bias.
func DepthwiseConv2DFloatLarge() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float_large")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)                                                   // depth_in = 2
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, tensor.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1) // depth_out = 2
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, tensor.Shape{2}, 100, 200)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		cm, act).To(output)

	b.Example(
		fixture.Values{i1: {
			10, 21, 10, 22,
			10, 23, 10, 24}},
		// (i1 (conv) f1) + b1
		fixture.Values{output: {110, 246}},
	)
	return b.MustBuild()
}

// DepthwiseConv2DFloatLargeWeightsAsInputs feeds the filter and bias as model
// inputs instead of constants.
func DepthwiseConv2DFloatLargeWeightsAsInputs() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float_large_weights_as_inputs")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
	f1 := b.Input("op2", fixture.TypeTensorFloat32, 1, 2, 2, 2)
	b1 := b.Input("op3", fixture.TypeTensorFloat32, 2)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		cm, act).To(output)

	b.Example(
		fixture.Values{
			i1: {10, 21, 10, 22, 10, 23, 10, 24},
			f1: {.25, 0, .25, 1, .25, 0, .25, 1},
			b1: {100, 200},
		},
		fixture.Values{output: {110, 246}},
	)
	return b.MustBuild()
}

// DepthwiseConv2DFloatLargeRelu6 clamps the large outputs with a fused RELU6.
func DepthwiseConv2DFloatLargeRelu6() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float_large_relu6")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, tensor.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1)
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, tensor.Shape{2}, 100, 200)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 3) // RELU6
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		pad0, pad0, pad0, pad0,
		stride, stride,
		cm, act).To(output)

	b.Example(
		fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}},
		fixture.Values{output: {6, 6}},
	)
	return b.MustBuild()
}

// DepthwiseConv2DFloatLargeImplicitPadding uses the 8-operand signature with
// VALID padding, which resolves to the same zero padding as the explicit form.
func DepthwiseConv2DFloatLargeImplicitPadding() *fixture.Fixture {
	b := fixture.NewModel("depthwise_conv2d_float_large_implicit_padding")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, tensor.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1)
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, tensor.Shape{2}, 100, 200)
	padding := b.Int32Scalar("padding", 2) // VALID
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)

	b.Operation("DEPTHWISE_CONV_2D",
		i1, f1, b1,
		padding,
		stride, stride,
		cm, act).To(output)

	b.Example(
		fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}},
		fixture.Values{output: {110, 246}},
	)
	return b.MustBuild()
}
