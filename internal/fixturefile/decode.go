package fixturefile

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/tensor"
)

// Decode parses HCL source and builds every fixture it declares. Fixtures are
// validated exactly as if they had been declared in Go.
func Decode(filename string, src []byte) ([]*fixture.Fixture, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", filename)
	}

	var root fileSchema
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode %s", filename)
	}

	fixtures := make([]*fixture.Fixture, 0, len(root.Fixtures))
	for _, fb := range root.Fixtures {
		f, err := fb.build()
		if err != nil {
			return nil, errors.WithMessage(err, filename)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// build replays the block through the fixture builder.
func (fb *fixtureBlock) build() (*fixture.Fixture, error) {
	b := fixture.NewModel(fb.Name)

	for _, ob := range fb.Operands {
		role, err := fixture.ParseRole(ob.Role)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture %q: operand %q", fb.Name, ob.Name)
		}
		typ, err := fixture.ParseOperandType(ob.Type)
		if err != nil {
			return nil, errors.Wrapf(fixture.ErrInvalidType, "fixture %q: operand %q: %v", fb.Name, ob.Name, err)
		}
		var shape tensor.Shape
		if len(ob.Shape) > 0 {
			shape = tensor.Shape(ob.Shape)
		}
		if role != fixture.RoleParameter && ob.Value != nil {
			return nil, errors.Wrapf(fixture.ErrUnexpectedValue, "fixture %q: operand %q is an %s", fb.Name, ob.Name, role)
		}

		switch role {
		case fixture.RoleInput:
			b.Input(ob.Name, typ, shape...)
		case fixture.RoleOutput:
			b.Output(ob.Name, typ, shape...)
		case fixture.RoleInternal:
			b.Internal(ob.Name, typ, shape...)
		case fixture.RoleParameter:
			b.Parameter(ob.Name, typ, shape, ob.Value...)
		}
	}

	for _, op := range fb.Operations {
		b.Operation(op.Type, refs(op.Inputs)...).To(refs(op.Outputs)...)
	}

	for _, ex := range fb.Examples {
		b.Example(values(ex.Inputs), values(ex.Outputs))
	}

	return b.Build()
}

func refs(names []string) []fixture.OperandRef {
	out := make([]fixture.OperandRef, len(names))
	for i, n := range names {
		out[i] = fixture.OperandRef(n)
	}
	return out
}

func values(m map[string][]float64) fixture.Values {
	out := make(fixture.Values, len(m))
	for name, v := range m {
		out[fixture.OperandRef(name)] = v
	}
	return out
}
