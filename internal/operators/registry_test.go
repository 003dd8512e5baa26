package operators

import (
	"testing"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/tensor"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	essentialOps := []string{
		"DEPTHWISE_CONV_2D", "CONV_2D",
		"ADD", "MUL",
		"RELU", "RELU1", "RELU6", "ABS",
		"RESHAPE",
	}

	for _, op := range essentialOps {
		if _, ok := r.Get(op); !ok {
			t.Errorf("Expected operator %s to be registered", op)
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Get("L2_POOL_2D"); ok {
		t.Error("Expected unknown operator to not be found")
	}

	_, err := r.Execute(&Context{Backend: cpu.New()}, &Node{Type: "L2_POOL_2D"}, nil)
	if err == nil {
		t.Error("Expected error executing unknown operator")
	}
}

func TestSupportedOpsSorted(t *testing.T) {
	ops := NewRegistry().SupportedOps()

	if len(ops) != 9 {
		t.Errorf("Expected 9 supported ops, got %d: %v", len(ops), ops)
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] > ops[i] {
			t.Errorf("SupportedOps not sorted: %v", ops)
		}
	}
}

func TestRegisterCustomOp(t *testing.T) {
	r := NewRegistry()

	r.Register("MY_CUSTOM_OP", func(_ *Context, _ *Node, _ []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
		return nil, nil
	})

	if _, ok := r.Get("MY_CUSTOM_OP"); !ok {
		t.Error("Expected custom operator to be registered")
	}
}
