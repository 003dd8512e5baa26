package executor

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/tensor"
)

// Errors returned by Compile and Run.
var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrMissingInput         = errors.New("missing input")
	ErrInputMismatch        = errors.New("input does not match declaration")
	ErrOutputMismatch       = errors.New("output does not match declaration")
)

// Program is a compiled model ready to run.
type Program struct {
	name     string
	registry *operators.Registry
	backend  operators.Backend
	params   map[string]*tensor.RawTensor // Materialized parameters
	declared map[string]fixture.Operand
	inputs   []fixture.Operand
	outputs  []fixture.Operand
	nodes    []operators.Node // Topological order
}

// Option configures Compile.
type Option func(*Program)

// WithBackend runs the program on the given kernels instead of the default CPU backend.
func WithBackend(b operators.Backend) Option {
	return func(p *Program) {
		p.backend = b
	}
}

// Compile prepares a model for execution: every operation must be known to
// the registry, parameters are materialized once, and operations are ordered
// so producers run before consumers.
func Compile(m *fixture.Model, registry *operators.Registry, opts ...Option) (*Program, error) {
	p := &Program{
		name:     m.Name(),
		registry: registry,
		backend:  cpu.New(),
		params:   make(map[string]*tensor.RawTensor),
		declared: make(map[string]fixture.Operand),
		inputs:   m.Inputs(),
		outputs:  m.Outputs(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, o := range m.Operands() {
		p.declared[o.Name] = o
		if o.Role != fixture.RoleParameter {
			continue
		}
		t, err := o.Tensor()
		if err != nil {
			return nil, errors.Wrapf(err, "model %q: failed to load parameter", p.name)
		}
		p.params[o.Name] = t
	}

	ops := m.Operations()
	for i, op := range ops {
		if _, ok := registry.Get(op.Type); !ok {
			return nil, errors.Wrapf(ErrUnsupportedOperation, "model %q: operation %d (%s)", p.name, i, op.Type)
		}
	}
	p.nodes = topologicalSort(toNodes(ops))

	klog.V(2).Infof("compiled %q: %d operations, %d parameters", p.name, len(p.nodes), len(p.params))
	return p, nil
}

// Name returns the model name.
func (p *Program) Name() string {
	return p.name
}

// Inputs returns the input declarations.
func (p *Program) Inputs() []fixture.Operand {
	return p.inputs
}

// Outputs returns the output declarations.
func (p *Program) Outputs() []fixture.Operand {
	return p.outputs
}

// Nodes returns the operations in execution order.
func (p *Program) Nodes() []operators.Node {
	return p.nodes
}

// Run executes the program with named inputs and returns the model outputs
// by name. The context is checked between operations.
func (p *Program) Run(ctx context.Context, inputs map[string]*tensor.RawTensor) (map[string]*tensor.RawTensor, error) {
	tensors := make(map[string]*tensor.RawTensor, len(p.params)+len(inputs))
	for name, t := range p.params {
		tensors[name] = t
	}
	for _, in := range p.inputs {
		t, ok := inputs[in.Name]
		if !ok || t == nil {
			return nil, errors.Wrapf(ErrMissingInput, "model %q: %s", p.name, in.Name)
		}
		if err := checkDeclared(in, t); err != nil {
			return nil, errors.Wrapf(ErrInputMismatch, "model %q: %v", p.name, err)
		}
		tensors[in.Name] = t
	}

	opCtx := &operators.Context{Backend: p.backend}
	for i := range p.nodes {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "model %q: stopped before %s", p.name, p.nodes[i].Name)
		}
		node := &p.nodes[i]

		nodeInputs := make([]*tensor.RawTensor, len(node.Inputs))
		for j, name := range node.Inputs {
			t, ok := tensors[name]
			if !ok {
				return nil, errors.Errorf("model %q: node %s: missing input %s", p.name, node.Name, name)
			}
			nodeInputs[j] = t
		}

		klog.V(2).Infof("%s: running %s with %d operands on %s", p.name, node.Name, len(nodeInputs), p.backend.Name())
		results, err := p.registry.Execute(opCtx, node, nodeInputs)
		if err != nil {
			return nil, errors.Wrapf(err, "model %q: node %s", p.name, node.Name)
		}
		if len(results) != len(node.Outputs) {
			return nil, errors.Errorf("model %q: node %s produced %d outputs, want %d",
				p.name, node.Name, len(results), len(node.Outputs))
		}

		for j, name := range node.Outputs {
			if err := checkDeclared(p.declared[name], results[j]); err != nil {
				return nil, errors.Wrapf(ErrOutputMismatch, "model %q: node %s: %v", p.name, node.Name, err)
			}
			tensors[name] = results[j]
		}
	}

	result := make(map[string]*tensor.RawTensor, len(p.outputs))
	for _, out := range p.outputs {
		t, ok := tensors[out.Name]
		if !ok {
			return nil, errors.Errorf("model %q: missing output %s", p.name, out.Name)
		}
		result[out.Name] = t
	}
	return result, nil
}

// checkDeclared verifies a tensor against an operand declaration.
func checkDeclared(o fixture.Operand, t *tensor.RawTensor) error {
	if want := o.Type.DataType(); t.DType() != want {
		return errors.Errorf("operand %s: dtype %s, declared %s", o.Name, t.DType(), want)
	}
	if !t.Shape().Equal(o.Shape) {
		return errors.Errorf("operand %s: shape %s, declared %s", o.Name, t.Shape(), o.Shape)
	}
	return nil
}
