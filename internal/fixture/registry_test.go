package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reluFixture(name string) *Fixture {
	b := NewModel(name)
	in := b.Input("in", TypeTensorFloat32, 2)
	out := b.Output("out", TypeTensorFloat32, 2)
	b.Operation("RELU", in).To(out)
	b.Example(Values{in: {-1, 1}}, Values{out: {0, 1}})
	return b.MustBuild()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(reluFixture("relu_b")))
	require.NoError(t, r.Add(depthwiseLarge().MustBuild()))
	require.NoError(t, r.Add(reluFixture("relu_a")))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"depthwise_conv2d_float_large", "relu_a", "relu_b"}, r.Names())

	f, ok := r.Get("relu_a")
	require.True(t, ok)
	assert.Equal(t, "relu_a", f.Name())

	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(reluFixture("relu")))
	err := r.Add(reluFixture("relu"))
	assert.ErrorIs(t, err, ErrDuplicateFixture)
}

func TestRegistry_Match(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(reluFixture("relu_a")))
	require.NoError(t, r.Add(depthwiseLarge().MustBuild()))

	all, err := r.Match("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := r.Match("depthwise_*")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "depthwise_conv2d_float_large", matched[0].Name())

	_, err = r.Match("[")
	assert.Error(t, err)
}

func TestOperandTypeNames(t *testing.T) {
	for _, name := range []string{"FLOAT32", "INT32", "TENSOR_FLOAT32", "TENSOR_FLOAT16", "BOOL"} {
		typ, err := ParseOperandType(name)
		require.NoError(t, err)
		assert.Equal(t, name, typ.String())
	}
	_, err := ParseOperandType("TENSOR_QUANT8_ASYMM")
	assert.Error(t, err)

	assert.True(t, TypeInt32.IsScalar())
	assert.False(t, TypeTensorFloat32.IsScalar())

	role, err := ParseRole("parameter")
	require.NoError(t, err)
	assert.Equal(t, RoleParameter, role)
	_, err = ParseRole("constant")
	assert.Error(t, err)
}
