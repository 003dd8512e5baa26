package operators

import (
	"github.com/born-ml/conformance/internal/tensor"
)

// registerMathOps adds element-wise arithmetic to the registry.
func (r *Registry) registerMathOps() {
	r.Register("ADD", handleAdd)
	r.Register("MUL", handleMul)
}

// handleAdd decodes: a, b, activation.
func handleAdd(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := requireInputs(node, inputs, 3); err != nil {
		return nil, err
	}
	act, err := activationAt(node, inputs, 2)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{ctx.Backend.Add(inputs[0], inputs[1], act)}, nil
}

// handleMul decodes: a, b, activation.
func handleMul(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := requireInputs(node, inputs, 3); err != nil {
		return nil, err
	}
	act, err := activationAt(node, inputs, 2)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{ctx.Backend.Mul(inputs[0], inputs[1], act)}, nil
}
