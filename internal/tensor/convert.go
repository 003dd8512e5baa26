package tensor

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// FromValues creates a tensor of the given shape and type from literal values.
// Integer and boolean types require integral values; bools accept only 0 and 1.
func FromValues(shape Shape, dtype DataType, values []float64) (*RawTensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(values) != raw.NumElements() {
		return nil, fmt.Errorf("shape %s needs %d values, got %d", shape, raw.NumElements(), len(values))
	}

	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i, v := range values {
			data[i] = float32(v)
		}
	case Float16:
		data := raw.AsFloat16()
		for i, v := range values {
			data[i] = float16.Fromfloat32(float32(v))
		}
	case Int32:
		data := raw.AsInt32()
		for i, v := range values {
			if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf("value %d (%v) is not a valid int32", i, v)
			}
			data[i] = int32(v)
		}
	case Uint32:
		data := raw.AsUint32()
		for i, v := range values {
			if v != math.Trunc(v) || v < 0 || v > math.MaxUint32 {
				return nil, fmt.Errorf("value %d (%v) is not a valid uint32", i, v)
			}
			data[i] = uint32(v)
		}
	case Bool:
		data := raw.AsBool()
		for i, v := range values {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("value %d (%v) is not a valid bool (0 or 1)", i, v)
			}
			data[i] = v == 1
		}
	default:
		return nil, fmt.Errorf("unsupported dtype %s", dtype)
	}
	return raw, nil
}

// Values returns the tensor elements widened to float64.
func (r *RawTensor) Values() []float64 {
	out := make([]float64, r.NumElements())
	switch r.dtype {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float16:
		for i, v := range r.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	case Int32:
		for i, v := range r.AsInt32() {
			out[i] = float64(v)
		}
	case Uint32:
		for i, v := range r.AsUint32() {
			out[i] = float64(v)
		}
	case Bool:
		for i, v := range r.AsBool() {
			if v {
				out[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("values: unsupported dtype %s", r.dtype))
	}
	return out
}

// Float32s returns the elements of a floating-point tensor as float32.
// For Float32 tensors this is the zero-copy view; Float16 tensors are widened into a new slice.
func (r *RawTensor) Float32s() []float32 {
	switch r.dtype {
	case Float32:
		return r.AsFloat32()
	case Float16:
		src := r.AsFloat16()
		out := make([]float32, len(src))
		for i, v := range src {
			out[i] = v.Float32()
		}
		return out
	default:
		panic(fmt.Sprintf("float32s: dtype %s is not floating point", r.dtype))
	}
}

// SetFloat32s stores float32 values into a floating-point tensor, rounding to
// half precision for Float16 tensors.
func (r *RawTensor) SetFloat32s(values []float32) {
	if len(values) != r.NumElements() {
		panic(fmt.Sprintf("set float32s: got %d values for %d elements", len(values), r.NumElements()))
	}
	switch r.dtype {
	case Float32:
		copy(r.AsFloat32(), values)
	case Float16:
		dst := r.AsFloat16()
		for i, v := range values {
			dst[i] = float16.Fromfloat32(v)
		}
	default:
		panic(fmt.Sprintf("set float32s: dtype %s is not floating point", r.dtype))
	}
}

// ScalarInt returns the single value of an Int32 or Uint32 scalar tensor.
func (r *RawTensor) ScalarInt() (int, error) {
	if r.NumElements() != 1 {
		return 0, fmt.Errorf("expected a scalar, got shape %s", r.shape)
	}
	switch r.dtype {
	case Int32:
		return int(r.AsInt32()[0]), nil
	case Uint32:
		return int(r.AsUint32()[0]), nil
	default:
		return 0, fmt.Errorf("expected an integer scalar, got %s", r.dtype)
	}
}
