// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/parallel"
)

// Backend represents the CPU reference kernels.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend provides every kernel the operator handlers use.
var _ operators.Backend = (*Backend)(nil)

// Config controls how kernels split work across goroutines.
type Config = parallel.Config

// ConvParams holds the scalar configuration shared by CONV_2D and DEPTHWISE_CONV_2D.
type ConvParams = internalcpu.ConvParams

// Activation is the fused activation code carried by NNAPI operations.
type Activation = internalcpu.Activation

// Fused activation codes.
const (
	ActivationNone  = internalcpu.ActivationNone
	ActivationRelu  = internalcpu.ActivationRelu
	ActivationRelu1 = internalcpu.ActivationRelu1
	ActivationRelu6 = internalcpu.ActivationRelu6
)

// PaddingScheme is the NNAPI implicit padding code.
type PaddingScheme = internalcpu.PaddingScheme

// Implicit padding codes.
const (
	PaddingSame  = internalcpu.PaddingSame
	PaddingValid = internalcpu.PaddingValid
)

// New creates a new CPU backend with parallelism sized to the machine.
//
// Example:
//
//	backend := cpu.New()
//	out := backend.Relu6(x)
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns parallelism defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a config that runs every kernel on the calling goroutine.
func Sequential() Config {
	return parallel.Sequential()
}

// ParseActivation validates an NNAPI fused activation code.
func ParseActivation(code int) (Activation, error) {
	return internalcpu.ParseActivation(code)
}

// ExplicitPadding resolves an implicit padding scheme to head/tail padding
// along one spatial axis.
func ExplicitPadding(scheme PaddingScheme, in, stride, kernel int) (head, tail int, err error) {
	return internalcpu.ExplicitPadding(scheme, in, stride, kernel)
}
