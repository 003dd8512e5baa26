package suite

import "github.com/born-ml/conformance/internal/fixture"

// AddFloat adds two inputs element-wise.
func AddFloat() *fixture.Fixture {
	b := fixture.NewModel("add_float")
	i1 := b.Input("op1", fixture.TypeTensorFloat32, 2)
	i2 := b.Input("op2", fixture.TypeTensorFloat32, 2)
	act := b.Int32Scalar("act", 0)
	i3 := b.Output("op3", fixture.TypeTensorFloat32, 2)

	b.Operation("ADD", i1, i2, act).To(i3)

	b.Example(
		fixture.Values{i1: {1, 2}, i2: {3, 4}},
		fixture.Values{i3: {4, 6}},
	)
	return b.MustBuild()
}
