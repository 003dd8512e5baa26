// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/conformance/internal/tensor"
)

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
	Uint32  DataType = tensor.Uint32
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 2, 2, 2} is an NHWC image batch of one 2×2 image with two channels.
type Shape = tensor.Shape

// RawTensor is a dense row-major tensor.
//
// Typed views (AsFloat32, AsFloat16, AsInt32, AsUint32, AsBool) share the
// tensor's memory; Values returns a widened float64 copy.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromValues creates a tensor from literal values in row-major order.
// Integer and boolean types require integral values; bools accept only 0 and 1.
//
// Example:
//
//	bias, err := tensor.FromValues(tensor.Shape{2}, tensor.Float32, []float64{100, 200})
func FromValues(shape Shape, dtype DataType, values []float64) (*RawTensor, error) {
	return tensor.FromValues(shape, dtype, values)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and whether either operand needs broadcasting.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{1, 2, 2, 2},
//	    tensor.Shape{2},
//	)
//	// resultShape = {1, 2, 2, 2}, needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
