// Package suite holds the built-in operator fixtures.
//
// Every constructor declares its fixture literally and builds it afresh on
// each call, so callers may keep or discard results freely.
package suite

import (
	"github.com/janpfeifer/must"

	"github.com/born-ml/conformance/internal/fixture"
)

// constructors lists the built-in fixtures in their stable order.
var constructors = []func() *fixture.Fixture{
	DepthwiseConv2DFloatLarge,
	DepthwiseConv2DFloatLargeWeightsAsInputs,
	DepthwiseConv2DFloatLargeRelu6,
	DepthwiseConv2DFloatLargeImplicitPadding,
	DepthwiseConv2DFloatMultiplier2,
	DepthwiseConv2DFloat16Large,
	ConvFloat,
	ReluFloat,
	AddFloat,
	ReshapeFloat,
}

// All returns every built-in fixture.
func All() []*fixture.Fixture {
	out := make([]*fixture.Fixture, len(constructors))
	for i, ctor := range constructors {
		out[i] = ctor()
	}
	return out
}

// Registry returns a registry holding every built-in fixture.
func Registry() *fixture.Registry {
	r := fixture.NewRegistry()
	for _, f := range All() {
		must.M(r.Add(f))
	}
	return r
}
