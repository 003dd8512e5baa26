package operators

import (
	"github.com/born-ml/conformance/internal/tensor"
)

// registerActivations adds the standalone activation operations.
func (r *Registry) registerActivations() {
	r.Register("RELU", unaryHandler(Backend.Relu))
	r.Register("RELU1", unaryHandler(Backend.Relu1))
	r.Register("RELU6", unaryHandler(Backend.Relu6))
	r.Register("ABS", unaryHandler(Backend.Abs))
}

func unaryHandler(kernel func(Backend, *tensor.RawTensor) *tensor.RawTensor) OpHandler {
	return func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
		if err := requireInputs(node, inputs, 1); err != nil {
			return nil, err
		}
		return []*tensor.RawTensor{kernel(ctx.Backend, inputs[0])}, nil
	}
}
