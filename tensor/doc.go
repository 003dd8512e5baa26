// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensors that fixture operands are
// materialized into and that the reference kernels consume.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/conformance/backend/cpu"
//	    "github.com/born-ml/conformance/tensor"
//	)
//
//	func main() {
//	    input, _ := tensor.FromValues(tensor.Shape{1, 2, 2, 2}, tensor.Float32,
//	        []float64{10, 21, 10, 22, 10, 23, 10, 24})
//	    fmt.Println(input.Shape()) // {1, 2, 2, 2}
//	}
//
// # Supported Data Types
//
//   - Float32, Float16 (computed in float32 and rounded back)
//   - Int32, Uint32
//   - Bool
//
// # Layout
//
// Tensors are dense and row-major. Image tensors use NHWC layout.
package tensor
