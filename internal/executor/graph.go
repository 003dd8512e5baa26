package executor

import (
	"fmt"

	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/operators"
)

// toNodes converts fixture operations into registry nodes named TYPE#index.
func toNodes(ops []fixture.Operation) []operators.Node {
	nodes := make([]operators.Node, len(ops))
	for i, op := range ops {
		nodes[i] = operators.Node{
			Name:    fmt.Sprintf("%s#%d", op.Type, i),
			Type:    op.Type,
			Inputs:  refNames(op.Inputs),
			Outputs: refNames(op.Outputs),
		}
	}
	return nodes
}

func refNames(refs []fixture.OperandRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name()
	}
	return names
}

// topologicalSort sorts nodes in execution order.
// The fixture builder has already rejected cycles.
func topologicalSort(nodes []operators.Node) []operators.Node {
	outputToNode := make(map[string]int)
	for i := range nodes {
		for _, output := range nodes[i].Outputs {
			outputToNode[output] = i
		}
	}

	visited := make([]bool, len(nodes))
	result := make([]operators.Node, 0, len(nodes))

	var visit func(i int)
	visit = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true

		// Visit producers first
		for _, input := range nodes[i].Inputs {
			if depIdx, ok := outputToNode[input]; ok {
				visit(depIdx)
			}
		}

		result = append(result, nodes[i])
	}

	for i := range nodes {
		visit(i)
	}

	return result
}
