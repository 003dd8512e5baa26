package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/tensor"
)

func raw(t *testing.T, shape tensor.Shape, dtype tensor.DataType, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.FromValues(shape, dtype, values)
	require.NoError(t, err)
	return r
}

func i32(t *testing.T, v int) *tensor.RawTensor {
	return raw(t, tensor.Shape{}, tensor.Int32, float64(v))
}

func execute(t *testing.T, opType string, inputs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	t.Helper()
	ctx := &Context{Backend: cpu.New()}
	return NewRegistry().Execute(ctx, &Node{Name: opType + "#0", Type: opType}, inputs)
}

func largeOperands(t *testing.T) (input, filter, bias *tensor.RawTensor) {
	input = raw(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, 10, 21, 10, 22, 10, 23, 10, 24)
	filter = raw(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, .25, 0, .25, 1, .25, 0, .25, 1)
	bias = raw(t, tensor.Shape{2}, tensor.Float32, 100, 200)
	return input, filter, bias
}

func TestDepthwiseConv2D_ExplicitPadding(t *testing.T) {
	input, filter, bias := largeOperands(t)
	pad0, stride, cm, act := i32(t, 0), i32(t, 1), i32(t, 1), i32(t, 0)

	outs, err := execute(t, "DEPTHWISE_CONV_2D",
		input, filter, bias, pad0, pad0, pad0, pad0, stride, stride, cm, act)
	require.NoError(t, err)
	require.Len(t, outs, 1)

	assert.True(t, outs[0].Shape().Equal(tensor.Shape{1, 1, 1, 2}))
	assert.Equal(t, []float32{110, 246}, outs[0].AsFloat32())
}

func TestDepthwiseConv2D_ImplicitValidPadding(t *testing.T) {
	input, filter, bias := largeOperands(t)

	outs, err := execute(t, "DEPTHWISE_CONV_2D",
		input, filter, bias, i32(t, int(cpu.PaddingValid)), i32(t, 1), i32(t, 1), i32(t, 1), i32(t, 0))
	require.NoError(t, err)
	assert.Equal(t, []float32{110, 246}, outs[0].AsFloat32())
}

func TestDepthwiseConv2D_ImplicitSamePadding(t *testing.T) {
	input, filter, bias := largeOperands(t)

	// SAME keeps the 2x2 extent; padding goes to the bottom/right.
	outs, err := execute(t, "DEPTHWISE_CONV_2D",
		input, filter, bias, i32(t, int(cpu.PaddingSame)), i32(t, 1), i32(t, 1), i32(t, 1), i32(t, 0))
	require.NoError(t, err)
	assert.True(t, outs[0].Shape().Equal(tensor.Shape{1, 2, 2, 2}))
	assert.Equal(t, float32(110), outs[0].AsFloat32()[0])
}

func TestDepthwiseConv2D_OperandErrors(t *testing.T) {
	input, filter, bias := largeOperands(t)
	zero, one := i32(t, 0), i32(t, 1)

	tests := []struct {
		name   string
		inputs []*tensor.RawTensor
	}{
		{"too few operands", []*tensor.RawTensor{input, filter, bias}},
		{"bad activation", []*tensor.RawTensor{input, filter, bias, zero, zero, zero, zero, one, one, one, i32(t, 9)}},
		{"zero stride", []*tensor.RawTensor{input, filter, bias, zero, zero, zero, zero, zero, one, one, zero}},
		{"negative padding", []*tensor.RawTensor{input, filter, bias, i32(t, -1), zero, zero, zero, one, one, one, zero}},
		{"zero multiplier", []*tensor.RawTensor{input, filter, bias, zero, zero, zero, zero, one, one, zero, zero}},
		{"float stride", []*tensor.RawTensor{input, filter, bias, zero, zero, zero, zero,
			raw(t, tensor.Shape{}, tensor.Float32, 1), one, one, zero}},
		{"unknown padding scheme", []*tensor.RawTensor{input, filter, bias, i32(t, 5), one, one, one, zero}},
		{"nil operand", []*tensor.RawTensor{input, filter, nil, zero, zero, zero, zero, one, one, one, zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "DEPTHWISE_CONV_2D", tt.inputs...)
			assert.Error(t, err)
		})
	}
}

func TestConv2D(t *testing.T) {
	input := raw(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, 1, 1, 1, 1, 0.5, 1, 1, 1, 1)
	filter := raw(t, tensor.Shape{1, 2, 2, 1}, tensor.Float32, .25, .25, .25, .25)
	bias := raw(t, tensor.Shape{1}, tensor.Float32, 0)
	pad0, stride, act := i32(t, 0), i32(t, 1), i32(t, 0)

	outs, err := execute(t, "CONV_2D", input, filter, bias, pad0, pad0, pad0, pad0, stride, stride, act)
	require.NoError(t, err)
	assert.Equal(t, []float32{.875, .875, .875, .875}, outs[0].AsFloat32())

	outs, err = execute(t, "CONV_2D", input, filter, bias, i32(t, int(cpu.PaddingValid)), stride, stride, act)
	require.NoError(t, err)
	assert.Equal(t, []float32{.875, .875, .875, .875}, outs[0].AsFloat32())
}

func TestAddAndMul(t *testing.T) {
	a := raw(t, tensor.Shape{2}, tensor.Float32, 1, 2)
	b := raw(t, tensor.Shape{2}, tensor.Float32, 3, 4)

	outs, err := execute(t, "ADD", a, b, i32(t, 0))
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 6}, outs[0].AsFloat32())

	outs, err = execute(t, "MUL", a, b, i32(t, int(cpu.ActivationRelu6)))
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 6}, outs[0].AsFloat32())

	_, err = execute(t, "ADD", a, b)
	assert.Error(t, err)
}

func TestActivations(t *testing.T) {
	x := raw(t, tensor.Shape{1, 2, 2, 1}, tensor.Float32, -10, -0.5, 0.5, 10)

	outs, err := execute(t, "RELU", x)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0.5, 10}, outs[0].AsFloat32())

	outs, err = execute(t, "ABS", x)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 0.5, 0.5, 10}, outs[0].AsFloat32())

	_, err = execute(t, "RELU6", x, x)
	assert.Error(t, err)
}

func TestReshape(t *testing.T) {
	x := raw(t, tensor.Shape{1, 1, 3, 3}, tensor.Float32, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	outs, err := execute(t, "RESHAPE", x, raw(t, tensor.Shape{2}, tensor.Int32, 1, 9))
	require.NoError(t, err)
	assert.True(t, outs[0].Shape().Equal(tensor.Shape{1, 9}))

	outs, err = execute(t, "RESHAPE", x, raw(t, tensor.Shape{2}, tensor.Int32, -1, 3))
	require.NoError(t, err)
	assert.True(t, outs[0].Shape().Equal(tensor.Shape{3, 3}))

	_, err = execute(t, "RESHAPE", x, raw(t, tensor.Shape{2}, tensor.Int32, 2, 5))
	assert.Error(t, err)

	_, err = execute(t, "RESHAPE", x, raw(t, tensor.Shape{2}, tensor.Int32, -1, -1))
	assert.Error(t, err)

	_, err = execute(t, "RESHAPE", x, raw(t, tensor.Shape{2}, tensor.Float32, 1, 9))
	assert.Error(t, err)
}
