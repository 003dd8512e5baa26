package harness

import (
	"math"

	"github.com/born-ml/conformance/internal/tensor"
)

// compareOutput checks every element of got against want and returns the
// number of elements outside tolerance together with the worst of them.
func compareOutput(name string, got *tensor.RawTensor, want []float64, tol Tolerance) (int, *Mismatch) {
	values := got.Values()
	if len(values) != len(want) {
		return len(want), &Mismatch{Operand: name, Index: min(len(values), len(want)), Got: math.NaN(), Want: math.NaN()}
	}

	count := 0
	var worst *Mismatch
	for i, w := range want {
		if tol.Allows(values[i], w) {
			continue
		}
		count++
		m := Mismatch{Operand: name, Index: i, Got: values[i], Want: w}
		if worst == nil || m.Diff() > worst.Diff() || math.IsNaN(m.Diff()) && !math.IsNaN(worst.Diff()) {
			worst = &m
		}
	}
	return count, worst
}
