package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/conformance/internal/tensor"
)

// Activation is the fused activation function code carried by NNAPI operations.
type Activation int

// Fused activation codes.
const (
	ActivationNone  Activation = 0
	ActivationRelu  Activation = 1
	ActivationRelu1 Activation = 2
	ActivationRelu6 Activation = 3
)

// String returns the NNAPI name of the activation.
func (a Activation) String() string {
	switch a {
	case ActivationNone:
		return "NONE"
	case ActivationRelu:
		return "RELU"
	case ActivationRelu1:
		return "RELU1"
	case ActivationRelu6:
		return "RELU6"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation validates a fused activation code.
func ParseActivation(code int) (Activation, error) {
	a := Activation(code)
	switch a {
	case ActivationNone, ActivationRelu, ActivationRelu1, ActivationRelu6:
		return a, nil
	default:
		return 0, fmt.Errorf("unknown fused activation code %d", code)
	}
}

// Range returns the clamp bounds of the activation.
func (a Activation) Range() (lo, hi float32) {
	switch a {
	case ActivationRelu:
		return 0, math.MaxFloat32
	case ActivationRelu1:
		return -1, 1
	case ActivationRelu6:
		return 0, 6
	default:
		return -math.MaxFloat32, math.MaxFloat32
	}
}

// apply clamps v into the activation range.
func (a Activation) apply(v float32) float32 {
	if a == ActivationNone {
		return v
	}
	lo, hi := a.Range()
	return min(max(v, lo), hi)
}

// Relu computes max(0, x) element-wise.
func (cpu *CPUBackend) Relu(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("relu", x, ActivationRelu.apply)
}

// Relu1 clamps x into [-1, 1] element-wise.
func (cpu *CPUBackend) Relu1(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("relu1", x, ActivationRelu1.apply)
}

// Relu6 clamps x into [0, 6] element-wise.
func (cpu *CPUBackend) Relu6(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("relu6", x, ActivationRelu6.apply)
}

// Abs computes |x| element-wise.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("abs", x, func(v float32) float32 {
		return float32(math.Abs(float64(v)))
	})
}

func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	dtype := requireFloat(op, x)
	src := x.Float32s()
	dst := make([]float32, len(src))
	cpu.forRange(len(src), func(i int) {
		dst[i] = f(src[i])
	})

	out := newLike(op, x.Shape(), dtype)
	out.SetFloat32s(dst)
	return out
}
