// Package cpu implements the reference CPU kernels that fixtures are replayed against.
//
// All image tensors use NHWC layout. Kernels panic on malformed operands,
// callers that need errors recover the panic at the execution boundary.
package cpu

import (
	"fmt"

	"github.com/born-ml/conformance/internal/parallel"
	"github.com/born-ml/conformance/internal/tensor"
)

// CPUBackend implements the reference operator kernels on CPU.
type CPUBackend struct {
	parallel parallel.Config
}

// New creates a new CPU backend using the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{parallel: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// newLike allocates a zeroed result tensor, panicking with the op name on failure.
func newLike(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	out, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create output tensor: %v", op, err))
	}
	return out
}

// requireFloat panics unless every tensor is floating point and shares a dtype.
func requireFloat(op string, ts ...*tensor.RawTensor) tensor.DataType {
	dtype := ts[0].DType()
	if !dtype.IsFloat() {
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float16 supported)", op, dtype))
	}
	for _, t := range ts[1:] {
		if t.DType() != dtype {
			panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, dtype, t.DType()))
		}
	}
	return dtype
}

func (cpu *CPUBackend) forRange(n int, f func(i int)) {
	parallel.For(n, f, cpu.parallel)
}

func (cpu *CPUBackend) forGrid(rows, cols int, f func(r, c int)) {
	parallel.ForGrid(rows, cols, f, cpu.parallel)
}
