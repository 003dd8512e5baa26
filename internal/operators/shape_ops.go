package operators

import (
	"fmt"

	"github.com/born-ml/conformance/internal/tensor"
)

// registerShapeOps adds shape manipulation operations.
func (r *Registry) registerShapeOps() {
	r.Register("RESHAPE", handleReshape)
}

// handleReshape decodes: data, shape (TENSOR_INT32). At most one target
// dimension may be -1 and is inferred from the element count.
func handleReshape(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := requireInputs(node, inputs, 2); err != nil {
		return nil, err
	}
	if inputs[1].DType() != tensor.Int32 || inputs[1].Shape().Rank() != 1 {
		return nil, fmt.Errorf("%s: shape operand must be a 1D int32 tensor, got %s %s",
			node.Type, inputs[1].DType(), inputs[1].Shape())
	}

	dims := inputs[1].AsInt32()
	newShape := make(tensor.Shape, len(dims))
	inferred := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == -1 && inferred < 0:
			inferred = i
		case d > 0:
			newShape[i] = int(d)
			known *= int(d)
		default:
			return nil, fmt.Errorf("%s: invalid target dimension %d at index %d", node.Type, d, i)
		}
	}
	if inferred >= 0 {
		total := inputs[0].NumElements()
		if total%known != 0 {
			return nil, fmt.Errorf("%s: cannot infer dimension %d: %d elements not divisible by %d",
				node.Type, inferred, total, known)
		}
		newShape[inferred] = total / known
	}
	if newShape.NumElements() != inputs[0].NumElements() {
		return nil, fmt.Errorf("%s: cannot reshape %s to %s", node.Type, inputs[0].Shape(), newShape)
	}

	return []*tensor.RawTensor{ctx.Backend.Reshape(inputs[0], newShape)}, nil
}
