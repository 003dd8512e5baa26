package cpu

import (
	"fmt"

	"github.com/born-ml/conformance/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting and a fused activation.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor, act Activation) *tensor.RawTensor {
	return cpu.binary("add", a, b, act, func(x, y float32) float32 { return x + y })
}

// Mul performs element-wise multiplication with broadcasting and a fused activation.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor, act Activation) *tensor.RawTensor {
	return cpu.binary("mul", a, b, act, func(x, y float32) float32 { return x * y })
}

func (cpu *CPUBackend) binary(op string, a, b *tensor.RawTensor, act Activation, f func(x, y float32) float32) *tensor.RawTensor {
	dtype := requireFloat(op, a, b)
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	x := a.Float32s()
	y := b.Float32s()
	dst := make([]float32, outShape.NumElements())

	if !needsBroadcast {
		// Fast path: identical shapes
		cpu.forRange(len(dst), func(i int) {
			dst[i] = act.apply(f(x[i], y[i]))
		})
	} else {
		aShape, bShape := a.Shape(), b.Shape()
		cpu.forRange(len(dst), func(i int) {
			xi := aShape.BroadcastIndex(outShape, i)
			yi := bShape.BroadcastIndex(outShape, i)
			dst[i] = act.apply(f(x[xi], y[yi]))
		})
	}

	out := newLike(op, outShape, dtype)
	out.SetFloat32s(dst)
	return out
}

// Reshape returns x viewed with a new shape of the same element count.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out, err := x.Reshape(shape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}
