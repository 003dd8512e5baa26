package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/conformance/internal/parallel"
	"github.com/born-ml/conformance/internal/tensor"
)

func mustTensor(t *testing.T, shape tensor.Shape, dtype tensor.DataType, values ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromValues(shape, dtype, values)
	if err != nil {
		t.Fatalf("FromValues(%v): %v", shape, err)
	}
	return raw
}

func assertValues(t *testing.T, got *tensor.RawTensor, wantShape tensor.Shape, want []float64) {
	t.Helper()
	if !got.Shape().Equal(wantShape) {
		t.Fatalf("Expected shape %v, got %v", wantShape, got.Shape())
	}
	values := got.Values()
	for i, exp := range want {
		if math.Abs(values[i]-exp) > 1e-5 {
			t.Errorf("Output[%d]: expected %v, got %v", i, exp, values[i])
		}
	}
}

// TestDepthwiseConv2D_FloatLarge checks the 2x2 "large" fixture arithmetic:
// channel 0 averages a constant 10 plane, channel 1 sums its right column.
func TestDepthwiseConv2D_FloatLarge(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, 10, 21, 10, 22, 10, 23, 10, 24)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, .25, 0, .25, 1, .25, 0, .25, 1)
	bias := mustTensor(t, tensor.Shape{2}, tensor.Float32, 100, 200)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1, Multiplier: 1})

	// c0: 4 * (10 * .25) + 100 = 110
	// c1: 22 + 24 + 200 = 246
	assertValues(t, output, tensor.Shape{1, 1, 1, 2}, []float64{110, 246})
}

func TestDepthwiseConv2D_Relu6(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, 10, 21, 10, 22, 10, 23, 10, 24)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, .25, 0, .25, 1, .25, 0, .25, 1)
	bias := mustTensor(t, tensor.Shape{2}, tensor.Float32, 100, 200)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{
		StrideW: 1, StrideH: 1, Multiplier: 1, Activation: ActivationRelu6,
	})

	assertValues(t, output, tensor.Shape{1, 1, 1, 2}, []float64{6, 6})
}

func TestDepthwiseConv2D_Multiplier(t *testing.T) {
	backend := New()

	// Two input channels, two outputs per channel.
	input := mustTensor(t, tensor.Shape{1, 1, 1, 2}, tensor.Float32, 1, 2)
	filter := mustTensor(t, tensor.Shape{1, 1, 1, 4}, tensor.Float32, 1, 2, 3, 4)
	bias := mustTensor(t, tensor.Shape{4}, tensor.Float32, 0, 0, 0, 0)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1, Multiplier: 2})

	// oc = ic*2 + m: [1*1, 1*2, 2*3, 2*4]
	assertValues(t, output, tensor.Shape{1, 1, 1, 4}, []float64{1, 2, 6, 8})
}

func TestDepthwiseConv2D_WithPadding(t *testing.T) {
	backend := NewWithConfig(parallel.Sequential())

	// Single channel 3x3 of ones, 3x3 ones filter, padding 1 everywhere.
	ones := make([]float64, 9)
	for i := range ones {
		ones[i] = 1
	}
	input := mustTensor(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, ones...)
	filter := mustTensor(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, ones...)
	bias := mustTensor(t, tensor.Shape{1}, tensor.Float32, 0)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{
		PadLeft: 1, PadRight: 1, PadTop: 1, PadBottom: 1,
		StrideW: 1, StrideH: 1, Multiplier: 1,
	})

	// Corner: 4 valid taps, edge: 6, center: 9
	assertValues(t, output, tensor.Shape{1, 3, 3, 1}, []float64{
		4, 6, 4,
		6, 9, 6,
		4, 6, 4,
	})
}

func TestDepthwiseConv2D_WithStride(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 4, 4, 1}, tensor.Float32,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 1}, tensor.Float32, 1, 1, 1, 1)
	bias := mustTensor(t, tensor.Shape{1}, tensor.Float32, 0)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{StrideW: 2, StrideH: 2, Multiplier: 1})

	// Non-overlapping 2x2 window sums
	assertValues(t, output, tensor.Shape{1, 2, 2, 1}, []float64{14, 22, 46, 54})
}

func TestDepthwiseConv2D_Float16(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float16, 10, 21, 10, 22, 10, 23, 10, 24)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float16, .25, 0, .25, 1, .25, 0, .25, 1)
	bias := mustTensor(t, tensor.Shape{2}, tensor.Float16, 100, 200)

	output := backend.DepthwiseConv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1, Multiplier: 1})

	if output.DType() != tensor.Float16 {
		t.Fatalf("Expected float16 output, got %s", output.DType())
	}
	assertValues(t, output, tensor.Shape{1, 1, 1, 2}, []float64{110, 246})
}

func TestDepthwiseConv2D_InvalidOperandsPanic(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, 10, 21, 10, 22, 10, 23, 10, 24)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 2}, tensor.Float32, .25, 0, .25, 1, .25, 0, .25, 1)
	bias := mustTensor(t, tensor.Shape{2}, tensor.Float32, 100, 200)
	badBias := mustTensor(t, tensor.Shape{3}, tensor.Float32, 1, 2, 3)

	tests := []struct {
		name   string
		bias   *tensor.RawTensor
		params ConvParams
	}{
		{"bias length", badBias, ConvParams{StrideW: 1, StrideH: 1, Multiplier: 1}},
		{"zero stride", bias, ConvParams{StrideW: 0, StrideH: 1, Multiplier: 1}},
		{"multiplier mismatch", bias, ConvParams{StrideW: 1, StrideH: 1, Multiplier: 2}},
		{"negative padding", bias, ConvParams{PadLeft: -1, StrideW: 1, StrideH: 1, Multiplier: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			backend.DepthwiseConv2D(input, filter, tt.bias, tt.params)
		})
	}
}

func TestExplicitPadding(t *testing.T) {
	tests := []struct {
		scheme             PaddingScheme
		in, stride, kernel int
		wantHead, wantTail int
	}{
		{PaddingValid, 2, 1, 2, 0, 0},
		{PaddingSame, 3, 1, 3, 1, 1},
		{PaddingSame, 2, 1, 2, 0, 1},
		{PaddingSame, 4, 2, 3, 0, 1},
		{PaddingSame, 5, 2, 2, 0, 1},
	}
	for _, tt := range tests {
		head, tail, err := ExplicitPadding(tt.scheme, tt.in, tt.stride, tt.kernel)
		if err != nil {
			t.Errorf("ExplicitPadding(%s, %d, %d, %d) error: %v", tt.scheme, tt.in, tt.stride, tt.kernel, err)
			continue
		}
		if head != tt.wantHead || tail != tt.wantTail {
			t.Errorf("ExplicitPadding(%s, %d, %d, %d) = %d, %d; want %d, %d",
				tt.scheme, tt.in, tt.stride, tt.kernel, head, tail, tt.wantHead, tt.wantTail)
		}
	}

	if _, _, err := ExplicitPadding(PaddingScheme(7), 2, 1, 2); err == nil {
		t.Error("expected error for unknown scheme")
	}
}
