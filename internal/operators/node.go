package operators

import (
	"fmt"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/tensor"
)

// Node is one operation of a compiled model.
type Node struct {
	Name    string   // e.g. "DEPTHWISE_CONV_2D#0"
	Type    string   // NNAPI operation name
	Inputs  []string // Operand names, in operand order
	Outputs []string // Operand names
}

// scalarInt reads an integer scalar operand at position idx.
func scalarInt(node *Node, inputs []*tensor.RawTensor, idx int, what string) (int, error) {
	v, err := inputs[idx].ScalarInt()
	if err != nil {
		return 0, fmt.Errorf("%s: operand %d (%s): %w", node.Type, idx, what, err)
	}
	return v, nil
}

// scalarInts reads consecutive integer scalar operands starting at idx.
func scalarInts(node *Node, inputs []*tensor.RawTensor, idx int, what ...string) ([]int, error) {
	out := make([]int, len(what))
	for i, w := range what {
		v, err := scalarInt(node, inputs, idx+i, w)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// activationAt decodes the fused activation operand at idx.
func activationAt(node *Node, inputs []*tensor.RawTensor, idx int) (cpu.Activation, error) {
	code, err := scalarInt(node, inputs, idx, "fused activation")
	if err != nil {
		return 0, err
	}
	act, err := cpu.ParseActivation(code)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", node.Type, err)
	}
	return act, nil
}

func requireInputs(node *Node, inputs []*tensor.RawTensor, counts ...int) error {
	for _, n := range counts {
		if len(inputs) == n {
			for i, in := range inputs {
				if in == nil {
					return fmt.Errorf("%s: operand %d is missing", node.Type, i)
				}
			}
			return nil
		}
	}
	if len(counts) == 1 {
		return fmt.Errorf("%s requires %d inputs, got %d", node.Type, counts[0], len(inputs))
	}
	return fmt.Errorf("%s requires %v inputs, got %d", node.Type, counts, len(inputs))
}
