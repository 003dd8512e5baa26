package operators

import (
	"fmt"
	"sort"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/tensor"
)

// Backend is the set of kernels the handlers delegate to.
type Backend interface {
	Name() string
	DepthwiseConv2D(input, filter, bias *tensor.RawTensor, p cpu.ConvParams) *tensor.RawTensor
	Conv2D(input, filter, bias *tensor.RawTensor, p cpu.ConvParams) *tensor.RawTensor
	Add(a, b *tensor.RawTensor, act cpu.Activation) *tensor.RawTensor
	Mul(a, b *tensor.RawTensor, act cpu.Activation) *tensor.RawTensor
	Relu(x *tensor.RawTensor) *tensor.RawTensor
	Relu1(x *tensor.RawTensor) *tensor.RawTensor
	Relu6(x *tensor.RawTensor) *tensor.RawTensor
	Abs(x *tensor.RawTensor) *tensor.RawTensor
	Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor
}

// OpHandler executes one operation and returns its output tensors.
type OpHandler func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error)

// Context provides the backend to handlers.
type Context struct {
	Backend Backend
}

// Registry maps NNAPI operation names to handler functions.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry creates a registry with all supported operations.
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]OpHandler),
	}

	r.registerConvOps()
	r.registerMathOps()
	r.registerActivations()
	r.registerShapeOps()

	return r
}

// Register adds or replaces a handler.
func (r *Registry) Register(opType string, handler OpHandler) {
	r.handlers[opType] = handler
}

// Get returns the handler for an operation type.
func (r *Registry) Get(opType string) (OpHandler, bool) {
	h, ok := r.handlers[opType]
	return h, ok
}

// Execute runs an operation with the given inputs.
func (r *Registry) Execute(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[node.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported operator: %s", node.Type)
	}
	return handler(ctx, node, inputs)
}

// SupportedOps returns all supported operation types, sorted.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
