// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go reference kernels that fixtures are
// evaluated against.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - NHWC depthwise and regular convolutions (im2col for the latter)
//   - Fused NONE/RELU/RELU1/RELU6 activations
//   - Float32 and Float16 support (half precision is computed in float32)
//   - NumPy-compatible broadcasting for ADD and MUL
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/conformance/backend/cpu"
//	    "github.com/born-ml/conformance/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    input, _ := tensor.FromValues(tensor.Shape{1, 2, 2, 2}, tensor.Float32,
//	        []float64{10, 21, 10, 22, 10, 23, 10, 24})
//	    filter, _ := tensor.FromValues(tensor.Shape{1, 2, 2, 2}, tensor.Float32,
//	        []float64{.25, 0, .25, 1, .25, 0, .25, 1})
//	    bias, _ := tensor.FromValues(tensor.Shape{2}, tensor.Float32, []float64{100, 200})
//
//	    out := backend.DepthwiseConv2D(input, filter, bias, cpu.ConvParams{
//	        StrideW: 1, StrideH: 1, Multiplier: 1,
//	    })
//	    fmt.Println(out.Values()) // [110 246]
//	}
//
// Kernels panic on malformed operands; the conformance harness recovers
// those panics and reports them as example failures.
package cpu
