// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fixture provides operator conformance fixtures: literal model
// graphs with example inputs and expected outputs, and a runner that replays
// them on reference CPU kernels.
//
// # Declaring a fixture
//
//	b := fixture.NewModel("depthwise_conv2d_float_large")
//	i1 := b.Input("op1", fixture.TypeTensorFloat32, 1, 2, 2, 2)
//	f1 := b.Parameter("op2", fixture.TypeTensorFloat32, fixture.Shape{1, 2, 2, 2}, .25, 0, .25, 1, .25, 0, .25, 1)
//	b1 := b.Parameter("op3", fixture.TypeTensorFloat32, fixture.Shape{2}, 100, 200)
//	pad0 := b.Int32Scalar("pad0", 0)
//	act := b.Int32Scalar("act", 0)
//	stride := b.Int32Scalar("stride", 1)
//	cm := b.Int32Scalar("channelMultiplier", 1)
//	output := b.Output("op4", fixture.TypeTensorFloat32, 1, 1, 1, 2)
//
//	b.Operation("DEPTHWISE_CONV_2D", i1, f1, b1, pad0, pad0, pad0, pad0, stride, stride, cm, act).To(output)
//	b.Example(
//	    fixture.Values{i1: {10, 21, 10, 22, 10, 23, 10, 24}},
//	    fixture.Values{output: {110, 246}},
//	)
//	f, err := b.Build()
//
// # Running fixtures
//
//	report, err := fixture.Run(ctx, fixture.DefaultRunConfig(), fixture.Builtin()...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Passed, report.Failed)
//
// # Fixture files
//
// Fixtures can be stored as HCL with [Encode] and read back with [Load].
package fixture
