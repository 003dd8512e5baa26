// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixture_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/conformance/fixture"
)

func TestBuiltinRunsClean(t *testing.T) {
	report, err := fixture.Run(context.Background(), fixture.DefaultRunConfig(), fixture.Builtin()...)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, len(fixture.Builtin()), report.Passed)
}

func TestDeclareEncodeDecodeRun(t *testing.T) {
	b := fixture.NewModel("depthwise_conv2d_float_large")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, fixture.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1)
	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, fixture.Shape{2}, 100, 200)
	pad0 := b.Int32Scalar("pad0", 0)
	act := b.Int32Scalar("act", 0)
	stride := b.Int32Scalar("stride", 1)
	cm := b.Int32Scalar("channelMultiplier", 1)
	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)
	b.Operation("DEPTHWISE_CONV_2D", i1, f1, b1, pad0, pad0, pad0, pad0, stride, stride, cm, act).To(output)
	b.Example(
		fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}},
		fixture.Values{output: {110, 246}},
	)
	f, err := b.Build()
	require.NoError(t, err)

	src, err := fixture.Encode(f)
	require.NoError(t, err)
	decoded, err := fixture.Decode("depthwise.hcl", src)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	report, err := fixture.Run(context.Background(), fixture.DefaultRunConfig(), decoded...)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestSupportedOperations(t *testing.T) {
	assert.Contains(t, fixture.SupportedOperations(), "DEPTHWISE_CONV_2D")
}
