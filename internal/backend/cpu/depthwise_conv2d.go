package cpu

import (
	"fmt"

	"github.com/born-ml/conformance/internal/tensor"
)

// ConvParams holds the scalar configuration shared by CONV_2D and DEPTHWISE_CONV_2D.
type ConvParams struct {
	PadLeft, PadRight int
	PadTop, PadBottom int
	StrideW, StrideH  int
	Multiplier        int // DEPTHWISE_CONV_2D only
	Activation        Activation
}

func (p ConvParams) validate(op string) {
	if p.PadLeft < 0 || p.PadRight < 0 || p.PadTop < 0 || p.PadBottom < 0 {
		panic(fmt.Sprintf("%s: negative padding %+v", op, p))
	}
	if p.StrideW <= 0 || p.StrideH <= 0 {
		panic(fmt.Sprintf("%s: strides must be positive, got w=%d h=%d", op, p.StrideW, p.StrideH))
	}
}

// outputSize computes the spatial extent of a convolution output.
func (p ConvParams) outputSize(op string, h, w, kh, kw int) (oh, ow int) {
	oh = (h+p.PadTop+p.PadBottom-kh)/p.StrideH + 1
	ow = (w+p.PadLeft+p.PadRight-kw)/p.StrideW + 1
	if oh <= 0 || ow <= 0 || h+p.PadTop+p.PadBottom < kh || w+p.PadLeft+p.PadRight < kw {
		panic(fmt.Sprintf("%s: invalid output dimensions: out_h=%d, out_w=%d (check kernel/stride/padding)", op, oh, ow))
	}
	return oh, ow
}

// DepthwiseConv2D performs depthwise 2D convolution with bias and fused activation.
//
// Input shape: [batch, height, width, depth_in]
// Filter shape: [1, filter_h, filter_w, depth_out]
// Bias shape: [depth_out]
// Output shape: [batch, out_h, out_w, depth_out]
//
// depth_out = depth_in * multiplier. Output channel ic*multiplier+m reads only
// input channel ic, so channels never mix.
func (cpu *CPUBackend) DepthwiseConv2D(input, filter, bias *tensor.RawTensor, p ConvParams) *tensor.RawTensor {
	const op = "depthwise_conv2d"

	inShape := input.Shape()
	fShape := filter.Shape()
	if len(inShape) != 4 {
		panic(fmt.Sprintf("%s: input must be 4D [N,H,W,C], got %dD", op, len(inShape)))
	}
	if len(fShape) != 4 || fShape[0] != 1 {
		panic(fmt.Sprintf("%s: filter must be [1,K_h,K_w,C_out], got %s", op, fShape))
	}
	p.validate(op)
	if p.Multiplier <= 0 {
		panic(fmt.Sprintf("%s: channel multiplier must be positive, got %d", op, p.Multiplier))
	}
	dtype := requireFloat(op, input, filter, bias)

	N, H, W, CIn := inShape[0], inShape[1], inShape[2], inShape[3]
	KH, KW, COut := fShape[1], fShape[2], fShape[3]
	if COut != CIn*p.Multiplier {
		panic(fmt.Sprintf("%s: filter depth %d != input depth %d * multiplier %d", op, COut, CIn, p.Multiplier))
	}
	if bShape := bias.Shape(); len(bShape) != 1 || bShape[0] != COut {
		panic(fmt.Sprintf("%s: bias must be [%d], got %s", op, COut, bShape))
	}

	HOut, WOut := p.outputSize(op, H, W, KH, KW)

	in := input.Float32s()
	f := filter.Float32s()
	b := bias.Float32s()
	dst := make([]float32, N*HOut*WOut*COut)

	// Each (batch, out_row) pair writes a disjoint output row.
	cpu.forGrid(N, HOut, func(n, oh int) {
		for ow := 0; ow < WOut; ow++ {
			hStart := oh*p.StrideH - p.PadTop
			wStart := ow*p.StrideW - p.PadLeft
			outBase := ((n*HOut+oh)*WOut + ow) * COut

			for ic := 0; ic < CIn; ic++ {
				for m := 0; m < p.Multiplier; m++ {
					oc := ic*p.Multiplier + m
					sum := b[oc]
					for kh := 0; kh < KH; kh++ {
						h := hStart + kh
						if h < 0 || h >= H {
							continue // zero padding
						}
						for kw := 0; kw < KW; kw++ {
							w := wStart + kw
							if w < 0 || w >= W {
								continue
							}
							sum += in[((n*H+h)*W+w)*CIn+ic] * f[(kh*KW+kw)*COut+oc]
						}
					}
					dst[outBase+oc] = p.Activation.apply(sum)
				}
			}
		}
	})

	out := newLike(op, tensor.Shape{N, HOut, WOut, COut}, dtype)
	out.SetFloat32s(dst)
	return out
}
