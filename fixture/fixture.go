// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixture

import (
	"context"

	internalfixture "github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/fixturefile"
	"github.com/born-ml/conformance/internal/harness"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/suite"
	"github.com/born-ml/conformance/tensor"
)

// Fixture is a validated model with its examples.
type Fixture = internalfixture.Fixture

// Model is an immutable model graph.
type Model = internalfixture.Model

// ModelBuilder declares operands, operations and examples.
type ModelBuilder = internalfixture.ModelBuilder

// Operand is a tensor or scalar declaration.
type Operand = internalfixture.Operand

// OperandRef names a declared operand.
type OperandRef = internalfixture.OperandRef

// OperandType is the NNAPI operand type code.
type OperandType = internalfixture.OperandType

// Values maps operands to literal values.
type Values = internalfixture.Values

// Example pairs inputs with expected outputs.
type Example = internalfixture.Example

// Registry indexes fixtures by name.
type Registry = internalfixture.Registry

// Shape is a tensor shape.
type Shape = tensor.Shape

// Operand types.
const (
	TypeFloat32       = internalfixture.TypeFloat32
	TypeInt32         = internalfixture.TypeInt32
	TypeUint32        = internalfixture.TypeUint32
	TypeTensorFloat32 = internalfixture.TypeTensorFloat32
	TypeTensorInt32   = internalfixture.TypeTensorInt32
	TypeBool          = internalfixture.TypeBool
	TypeTensorFloat16 = internalfixture.TypeTensorFloat16
	TypeTensorBool8   = internalfixture.TypeTensorBool8
	TypeFloat16       = internalfixture.TypeFloat16
)

// NewModel starts declaring a fixture.
func NewModel(name string) *ModelBuilder {
	return internalfixture.NewModel(name)
}

// NewRegistry creates an empty fixture registry.
func NewRegistry() *Registry {
	return internalfixture.NewRegistry()
}

// Builtin returns the built-in fixtures in a stable order.
func Builtin() []*Fixture {
	return suite.All()
}

// Load reads fixtures from .hcl files and directories.
func Load(paths ...string) ([]*Fixture, error) {
	return fixturefile.LoadPaths(paths...)
}

// Decode parses fixtures from HCL source.
func Decode(filename string, src []byte) ([]*Fixture, error) {
	return fixturefile.Decode(filename, src)
}

// Encode renders fixtures as canonical HCL.
func Encode(fixtures ...*Fixture) ([]byte, error) {
	return fixturefile.Encode(fixtures...)
}

// RunConfig controls Run.
type RunConfig = harness.Config

// Report is the outcome of Run.
type Report = harness.Report

// DefaultRunConfig returns the standard tolerances and one worker per CPU.
func DefaultRunConfig() RunConfig {
	return harness.DefaultConfig()
}

// Run replays every example of the given fixtures on the reference CPU kernels.
func Run(ctx context.Context, cfg RunConfig, fixtures ...*Fixture) (*Report, error) {
	return harness.New(cfg, operators.NewRegistry()).Run(ctx, fixtures...)
}

// SupportedOperations lists the operation types the reference kernels implement.
func SupportedOperations() []string {
	return operators.NewRegistry().SupportedOps()
}
