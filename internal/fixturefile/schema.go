package fixturefile

// fileSchema decodes every top-level block of a fixture file.
type fileSchema struct {
	Fixtures []*fixtureBlock `hcl:"fixture,block"`
}

type fixtureBlock struct {
	Name       string            `hcl:"name,label"`
	Operands   []*operandBlock   `hcl:"operand,block"`
	Operations []*operationBlock `hcl:"operation,block"`
	Examples   []*exampleBlock   `hcl:"example,block"`
}

type operandBlock struct {
	Name  string    `hcl:"name,label"`
	Role  string    `hcl:"role"`
	Type  string    `hcl:"type"`
	Shape []int     `hcl:"shape,optional"`
	Value []float64 `hcl:"value,optional"`
}

type operationBlock struct {
	Type    string   `hcl:"type,label"`
	Inputs  []string `hcl:"inputs"`
	Outputs []string `hcl:"outputs"`
}

type exampleBlock struct {
	Inputs  map[string][]float64 `hcl:"inputs"`
	Outputs map[string][]float64 `hcl:"outputs"`
}
