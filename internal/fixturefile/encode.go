package fixturefile

import (
	"math"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/born-ml/conformance/internal/fixture"
)

// Encode renders fixtures as canonical HCL. The output depends only on the
// declarations: operands, operations and examples keep declaration order and
// example maps are sorted by operand name.
func Encode(fixtures ...*fixture.Fixture) ([]byte, error) {
	file := hclwrite.NewEmptyFile()
	body := file.Body()
	for i, f := range fixtures {
		if i > 0 {
			body.AppendNewline()
		}
		if err := appendFixture(body, f); err != nil {
			return nil, errors.WithMessagef(err, "fixture %q", f.Name())
		}
	}
	return hclwrite.Format(file.Bytes()), nil
}

func appendFixture(parent *hclwrite.Body, f *fixture.Fixture) error {
	body := parent.AppendNewBlock("fixture", []string{f.Name()}).Body()
	m := f.Model()

	for _, o := range m.Operands() {
		ob := body.AppendNewBlock("operand", []string{o.Name}).Body()
		ob.SetAttributeValue("role", cty.StringVal(o.Role.String()))
		ob.SetAttributeValue("type", cty.StringVal(o.Type.String()))
		if o.Shape.Rank() > 0 {
			dims := make([]float64, len(o.Shape))
			for i, d := range o.Shape {
				dims[i] = float64(d)
			}
			ob.SetAttributeValue("shape", must.M1(numberList(dims)))
		}
		if o.Role == fixture.RoleParameter {
			v, err := numberList(o.Value)
			if err != nil {
				return errors.WithMessagef(err, "operand %q", o.Name)
			}
			ob.SetAttributeValue("value", v)
		}
	}

	for _, op := range m.Operations() {
		body.AppendNewline()
		opb := body.AppendNewBlock("operation", []string{op.Type}).Body()
		opb.SetAttributeValue("inputs", stringList(op.Inputs))
		opb.SetAttributeValue("outputs", stringList(op.Outputs))
	}

	for i, ex := range f.Examples() {
		body.AppendNewline()
		eb := body.AppendNewBlock("example", nil).Body()
		inputs, err := valueMap(ex.Inputs)
		if err != nil {
			return errors.WithMessagef(err, "example %d inputs", i)
		}
		outputs, err := valueMap(ex.Outputs)
		if err != nil {
			return errors.WithMessagef(err, "example %d outputs", i)
		}
		eb.SetAttributeValue("inputs", inputs)
		eb.SetAttributeValue("outputs", outputs)
	}
	return nil
}

// numberVal converts through the shortest decimal form so that 0.1 is
// written as 0.1 rather than its binary expansion.
func numberVal(v float64) (cty.Value, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cty.NilVal, errors.Errorf("value %v has no HCL representation", v)
	}
	return cty.ParseNumberVal(strconv.FormatFloat(v, 'g', -1, 64))
}

func numberList(values []float64) (cty.Value, error) {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.Number), nil
	}
	elems := make([]cty.Value, len(values))
	for i, v := range values {
		n, err := numberVal(v)
		if err != nil {
			return cty.NilVal, errors.WithMessagef(err, "index %d", i)
		}
		elems[i] = n
	}
	return cty.ListVal(elems), nil
}

func stringList(refs []fixture.OperandRef) cty.Value {
	if len(refs) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	elems := make([]cty.Value, len(refs))
	for i, r := range refs {
		elems[i] = cty.StringVal(r.Name())
	}
	return cty.ListVal(elems)
}

func valueMap(values fixture.Values) (cty.Value, error) {
	if len(values) == 0 {
		return cty.MapValEmpty(cty.List(cty.Number)), nil
	}
	elems := make(map[string]cty.Value, len(values))
	for _, ref := range values.Refs() {
		v, err := numberList(values[ref])
		if err != nil {
			return cty.NilVal, errors.WithMessagef(err, "operand %q", ref)
		}
		elems[ref.Name()] = v
	}
	return cty.MapVal(elems), nil
}
