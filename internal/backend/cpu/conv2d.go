package cpu

import (
	"fmt"

	"github.com/born-ml/conformance/internal/tensor"
)

// Conv2D performs 2D convolution with bias and fused activation using im2col.
//
// Input shape: [batch, height, width, depth_in]
// Filter shape: [depth_out, filter_h, filter_w, depth_in]
// Bias shape: [depth_out]
// Output shape: [batch, out_h, out_w, depth_out]
//
// Algorithm: Im2col
//  1. Transform input patches into rows (im2col), one row per output pixel
//  2. Each filter is already a flat [K_h*K_w*C_in] row in NHWC order
//  3. Dot every patch row with every filter row
//
// NHWC makes step 3 land directly in output layout: row-major
// [N*H_out*W_out, C_out] is [N, H_out, W_out, C_out].
func (cpu *CPUBackend) Conv2D(input, filter, bias *tensor.RawTensor, p ConvParams) *tensor.RawTensor {
	const op = "conv2d"

	inShape := input.Shape()
	fShape := filter.Shape()
	if len(inShape) != 4 {
		panic(fmt.Sprintf("%s: input must be 4D [N,H,W,C], got %dD", op, len(inShape)))
	}
	if len(fShape) != 4 {
		panic(fmt.Sprintf("%s: filter must be 4D [C_out,K_h,K_w,C_in], got %dD", op, len(fShape)))
	}
	p.validate(op)
	dtype := requireFloat(op, input, filter, bias)

	N, H, W, CIn := inShape[0], inShape[1], inShape[2], inShape[3]
	COut, KH, KW, CInK := fShape[0], fShape[1], fShape[2], fShape[3]
	if CIn != CInK {
		panic(fmt.Sprintf("%s: input channels %d != filter channels %d", op, CIn, CInK))
	}
	if bShape := bias.Shape(); len(bShape) != 1 || bShape[0] != COut {
		panic(fmt.Sprintf("%s: bias must be [%d], got %s", op, COut, bShape))
	}

	HOut, WOut := p.outputSize(op, H, W, KH, KW)

	colWidth := KH * KW * CIn
	colHeight := N * HOut * WOut
	colBuf := make([]float32, colHeight*colWidth)
	im2colNHWC(colBuf, input.Float32s(), N, H, W, CIn, KH, KW, HOut, WOut, p)

	f := filter.Float32s()
	b := bias.Float32s()
	dst := make([]float32, colHeight*COut)

	cpu.forRange(colHeight, func(j int) {
		patch := colBuf[j*colWidth : (j+1)*colWidth]
		for oc := 0; oc < COut; oc++ {
			kernel := f[oc*colWidth : (oc+1)*colWidth]
			sum := b[oc]
			for k, v := range patch {
				sum += kernel[k] * v
			}
			dst[j*COut+oc] = p.Activation.apply(sum)
		}
	})

	out := newLike(op, tensor.Shape{N, HOut, WOut, COut}, dtype)
	out.SetFloat32s(dst)
	return out
}

// im2colNHWC transforms an NHWC input into a patch matrix.
//
// Output: colBuf [N * H_out * W_out, K_h * K_w * C_in]
//
// Patch elements are ordered (kh, kw, c) to match the filter layout.
// Out-of-bounds taps are zero (padding).
func im2colNHWC(colBuf, in []float32, N, H, W, C, KH, KW, HOut, WOut int, p ConvParams) {
	colWidth := KH * KW * C
	row := 0

	for n := 0; n < N; n++ {
		for oh := 0; oh < HOut; oh++ {
			for ow := 0; ow < WOut; ow++ {
				hStart := oh*p.StrideH - p.PadTop
				wStart := ow*p.StrideW - p.PadLeft
				bufIdx := row * colWidth

				for kh := 0; kh < KH; kh++ {
					h := hStart + kh
					for kw := 0; kw < KW; kw++ {
						w := wStart + kw
						if h >= 0 && h < H && w >= 0 && w < W {
							copy(colBuf[bufIdx:bufIdx+C], in[((n*H+h)*W+w)*C:])
						} else {
							clear(colBuf[bufIdx : bufIdx+C])
						}
						bufIdx += C
					}
				}
				row++
			}
		}
	}
}
