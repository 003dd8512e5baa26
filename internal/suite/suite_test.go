package suite

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/conformance/internal/executor"
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/tensor"
)

func operand(t *testing.T, f *fixture.Fixture, name string) fixture.Operand {
	t.Helper()
	o, ok := f.Model().Operand(fixture.OperandRef(name))
	require.True(t, ok, "operand %s not declared", name)
	return o
}

func TestDepthwiseConv2DFloatLarge_Declarations(t *testing.T) {
	f := DepthwiseConv2DFloatLarge()
	require.Equal(t, "depthwise_conv2d_float_large", f.Name())
	require.Equal(t, 1, f.NumExamples())
	example := f.Examples()[0]

	op1 := operand(t, f, "op1")
	assert.Equal(t, fixture.RoleInput, op1.Role)
	assert.Equal(t, fixture.TypeTensorFloat32, op1.Type)
	assert.Equal(t, tensor.Shape{1, 2, 2, 2}, op1.Shape)
	assert.Equal(t, []float64{10, 21, 10, 22, 10, 23, 10, 24}, example.Inputs["op1"])

	op2 := operand(t, f, "op2")
	assert.Equal(t, fixture.RoleParameter, op2.Role)
	assert.Equal(t, tensor.Shape{1, 2, 2, 2}, op2.Shape)
	assert.Equal(t, []float64{.25, 0, .25, 1, .25, 0, .25, 1}, op2.Value)

	op3 := operand(t, f, "op3")
	assert.Equal(t, tensor.Shape{2}, op3.Shape)
	assert.Equal(t, []float64{100, 200}, op3.Value)

	op4 := operand(t, f, "op4")
	assert.Equal(t, fixture.RoleOutput, op4.Role)
	assert.Equal(t, tensor.Shape{1, 1, 1, 2}, op4.Shape)
	assert.Equal(t, []float64{110, 246}, example.Outputs["op4"])

	scalars := map[string]float64{"pad0": 0, "act": 0, "stride": 1, "channelMultiplier": 1}
	for name, want := range scalars {
		o := operand(t, f, name)
		assert.Equal(t, fixture.TypeInt32, o.Type, name)
		assert.Equal(t, 0, o.Shape.Rank(), name)
		assert.Equal(t, []float64{want}, o.Value, name)
	}

	ops := f.Model().Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "DEPTHWISE_CONV_2D", ops[0].Type)
	assert.Equal(t, []fixture.OperandRef{
		"op1", "op2", "op3",
		"pad0", "pad0", "pad0", "pad0",
		"stride", "stride",
		"channelMultiplier", "act",
	}, ops[0].Inputs)
	assert.Equal(t, []fixture.OperandRef{"op4"}, ops[0].Outputs)
}

func TestAll_FreshAndIdentical(t *testing.T) {
	first, second := All(), All()
	require.Len(t, second, len(first))

	for i := range first {
		a, b := first[i], second[i]
		assert.NotSame(t, a, b)
		assert.Empty(t, cmp.Diff(a.Model().Operands(), b.Model().Operands()), a.Name())
		assert.Empty(t, cmp.Diff(a.Model().Operations(), b.Model().Operations()), a.Name())
		assert.Empty(t, cmp.Diff(a.Examples(), b.Examples()), a.Name())
	}
}

func TestRegistry(t *testing.T) {
	r := Registry()
	assert.Equal(t, len(All()), r.Len())

	f, ok := r.Get("depthwise_conv2d_float_large")
	require.True(t, ok)
	assert.Equal(t, []string{"DEPTHWISE_CONV_2D"}, f.OperationTypes())

	depthwise, err := r.Match("depthwise_conv2d_*")
	require.NoError(t, err)
	assert.Len(t, depthwise, 6)
}

// Every built-in example must reproduce on the reference kernels.
func TestAll_ReplayOnReferenceKernels(t *testing.T) {
	registry := operators.NewRegistry()
	for _, f := range All() {
		t.Run(f.Name(), func(t *testing.T) {
			prog, err := executor.Compile(f.Model(), registry)
			require.NoError(t, err)

			for _, ex := range f.Examples() {
				inputs := make(map[string]*tensor.RawTensor)
				for ref, values := range ex.Inputs {
					raw, err := fixture.TensorFor(operand(t, f, ref.Name()), values)
					require.NoError(t, err)
					inputs[ref.Name()] = raw
				}

				outputs, err := prog.Run(context.Background(), inputs)
				require.NoError(t, err)

				for ref, want := range ex.Outputs {
					got := outputs[ref.Name()].Values()
					require.Len(t, got, len(want))
					for i := range want {
						assert.LessOrEqual(t, math.Abs(got[i]-want[i]), 1e-5+1e-5*math.Abs(want[i]),
							"%s[%d] = %v, want %v", ref, i, got[i], want[i])
					}
				}
			}
		})
	}
}
