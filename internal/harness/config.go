package harness

import (
	"math"
	"runtime"

	"github.com/born-ml/conformance/internal/parallel"
	"github.com/born-ml/conformance/internal/tensor"
)

// Tolerance bounds the accepted difference between an output element a and
// its expected value e: |a-e| <= Atol + Rtol*|e|.
type Tolerance struct {
	Atol float64
	Rtol float64
}

// Exact accepts only identical values.
var Exact = Tolerance{}

// Allows reports whether got is within tolerance of want. NaN matches only NaN.
func (t Tolerance) Allows(got, want float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if got == want {
		return true
	}
	return math.Abs(got-want) <= t.Atol+t.Rtol*math.Abs(want)
}

// Config controls a Runner.
type Config struct {
	// Workers is the number of fixtures replayed concurrently.
	Workers int

	// FailFast stops scheduling fixtures after the first failure.
	FailFast bool

	// Tolerances per output data type. Types without an entry compare exactly.
	Tolerances map[tensor.DataType]Tolerance

	// Kernels configures parallelism inside the CPU kernels.
	Kernels parallel.Config
}

// DefaultConfig returns the standard tolerances: 1e-5 absolute and relative
// for float32, 5 ulp at 1.0 (5·2⁻¹⁰) for float16, exact for everything else.
func DefaultConfig() Config {
	f16 := 5 * math.Pow(2, -10)
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		FailFast: false,
		Tolerances: map[tensor.DataType]Tolerance{
			tensor.Float32: {Atol: 1e-5, Rtol: 1e-5},
			tensor.Float16: {Atol: f16, Rtol: f16},
		},
		Kernels: parallel.DefaultConfig(),
	}
}

// tolerance returns the tolerance for dtype.
func (c Config) tolerance(dtype tensor.DataType) Tolerance {
	if t, ok := c.Tolerances[dtype]; ok {
		return t
	}
	return Exact
}
