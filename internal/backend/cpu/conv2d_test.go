package cpu

import (
	"testing"

	"github.com/born-ml/conformance/internal/tensor"
)

// TestConv2D_Float mirrors the classic conv_float fixture: a 3x3 plane of ones
// with 0.5 in the center, averaged by a 2x2 filter.
func TestConv2D_Float(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, 1, 1, 1, 1, 0.5, 1, 1, 1, 1)
	filter := mustTensor(t, tensor.Shape{1, 2, 2, 1}, tensor.Float32, .25, .25, .25, .25)
	bias := mustTensor(t, tensor.Shape{1}, tensor.Float32, 0)

	output := backend.Conv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1})

	// Every 2x2 window contains the center: (3 + 0.5) / 4
	assertValues(t, output, tensor.Shape{1, 2, 2, 1}, []float64{.875, .875, .875, .875})
}

// TestConv2D_MixesChannels checks that, unlike depthwise, every output channel
// reads every input channel.
func TestConv2D_MixesChannels(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 1, 1, 2}, tensor.Float32, 1, 2)
	// Two output channels: [1,1] and [10,-1]
	filter := mustTensor(t, tensor.Shape{2, 1, 1, 2}, tensor.Float32, 1, 1, 10, -1)
	bias := mustTensor(t, tensor.Shape{2}, tensor.Float32, 0.5, 0)

	output := backend.Conv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1})

	assertValues(t, output, tensor.Shape{1, 1, 1, 2}, []float64{3.5, 8})
}

func TestConv2D_WithPaddingAndRelu(t *testing.T) {
	backend := New()

	ones := make([]float64, 9)
	for i := range ones {
		ones[i] = 1
	}
	input := mustTensor(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, ones...)
	filter := mustTensor(t, tensor.Shape{1, 3, 3, 1}, tensor.Float32, ones...)
	bias := mustTensor(t, tensor.Shape{1}, tensor.Float32, -5)

	output := backend.Conv2D(input, filter, bias, ConvParams{
		PadLeft: 1, PadRight: 1, PadTop: 1, PadBottom: 1,
		StrideW: 1, StrideH: 1, Activation: ActivationRelu,
	})

	// Window sums 4/6/9 shifted by -5 then clamped at 0
	assertValues(t, output, tensor.Shape{1, 3, 3, 1}, []float64{
		0, 1, 0,
		1, 4, 1,
		0, 1, 0,
	})
}

func TestConv2D_ChannelMismatchPanics(t *testing.T) {
	backend := New()

	input := mustTensor(t, tensor.Shape{1, 1, 1, 2}, tensor.Float32, 1, 2)
	filter := mustTensor(t, tensor.Shape{1, 1, 1, 3}, tensor.Float32, 1, 1, 1)
	bias := mustTensor(t, tensor.Shape{1}, tensor.Float32, 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for channel mismatch")
		}
	}()
	backend.Conv2D(input, filter, bias, ConvParams{StrideW: 1, StrideH: 1})
}
