package operators

import (
	"fmt"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/tensor"
)

// registerConvOps adds the convolution operations to the registry.
func (r *Registry) registerConvOps() {
	r.Register("DEPTHWISE_CONV_2D", handleDepthwiseConv2D)
	r.Register("CONV_2D", handleConv2D)
}

// Operand counts of the convolution signatures.
const (
	depthwiseExplicitInputs = 11
	depthwiseImplicitInputs = 8
	convExplicitInputs      = 10
	convImplicitInputs      = 7
)

// handleDepthwiseConv2D decodes
//
//	explicit: input, filter, bias, pad_left, pad_right, pad_top, pad_bottom, stride_w, stride_h, multiplier, activation
//	implicit: input, filter, bias, padding_scheme, stride_w, stride_h, multiplier, activation
func handleDepthwiseConv2D(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := requireInputs(node, inputs, depthwiseExplicitInputs, depthwiseImplicitInputs); err != nil {
		return nil, err
	}

	p, next, err := convPadding(node, inputs, len(inputs) == depthwiseImplicitInputs)
	if err != nil {
		return nil, err
	}
	rest, err := scalarInts(node, inputs, next, "stride width", "stride height", "channel multiplier")
	if err != nil {
		return nil, err
	}
	p.StrideW, p.StrideH, p.Multiplier = rest[0], rest[1], rest[2]
	if p.Activation, err = activationAt(node, inputs, next+3); err != nil {
		return nil, err
	}
	if err := checkConvScalars(node, p, true); err != nil {
		return nil, err
	}

	out := ctx.Backend.DepthwiseConv2D(inputs[0], inputs[1], inputs[2], p)
	return []*tensor.RawTensor{out}, nil
}

// handleConv2D decodes
//
//	explicit: input, filter, bias, pad_left, pad_right, pad_top, pad_bottom, stride_w, stride_h, activation
//	implicit: input, filter, bias, padding_scheme, stride_w, stride_h, activation
func handleConv2D(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := requireInputs(node, inputs, convExplicitInputs, convImplicitInputs); err != nil {
		return nil, err
	}

	p, next, err := convPadding(node, inputs, len(inputs) == convImplicitInputs)
	if err != nil {
		return nil, err
	}
	strides, err := scalarInts(node, inputs, next, "stride width", "stride height")
	if err != nil {
		return nil, err
	}
	p.StrideW, p.StrideH = strides[0], strides[1]
	if p.Activation, err = activationAt(node, inputs, next+2); err != nil {
		return nil, err
	}
	if err := checkConvScalars(node, p, false); err != nil {
		return nil, err
	}

	out := ctx.Backend.Conv2D(inputs[0], inputs[1], inputs[2], p)
	return []*tensor.RawTensor{out}, nil
}

// convPadding decodes the padding operands starting at index 3 and returns the
// index of the first stride operand. The implicit form carries a single
// padding scheme operand instead of four explicit amounts.
func convPadding(node *Node, inputs []*tensor.RawTensor, implicit bool) (cpu.ConvParams, int, error) {
	var p cpu.ConvParams
	in, filter := inputs[0].Shape(), inputs[1].Shape()
	if len(in) != 4 || len(filter) != 4 {
		return p, 0, fmt.Errorf("%s: input and filter must be 4D, got %s and %s", node.Type, in, filter)
	}

	if !implicit {
		pads, err := scalarInts(node, inputs, 3, "padding left", "padding right", "padding top", "padding bottom")
		if err != nil {
			return p, 0, err
		}
		p.PadLeft, p.PadRight, p.PadTop, p.PadBottom = pads[0], pads[1], pads[2], pads[3]
		return p, 7, nil
	}

	vals, err := scalarInts(node, inputs, 3, "padding scheme", "stride width", "stride height")
	if err != nil {
		return p, 0, err
	}
	scheme, strideW, strideH := cpu.PaddingScheme(vals[0]), vals[1], vals[2]

	// Filter spatial dims sit at axes 1 and 2 for both CONV_2D and DEPTHWISE_CONV_2D.
	if p.PadLeft, p.PadRight, err = cpu.ExplicitPadding(scheme, in[2], strideW, filter[2]); err != nil {
		return p, 0, fmt.Errorf("%s: width padding: %w", node.Type, err)
	}
	if p.PadTop, p.PadBottom, err = cpu.ExplicitPadding(scheme, in[1], strideH, filter[1]); err != nil {
		return p, 0, fmt.Errorf("%s: height padding: %w", node.Type, err)
	}
	return p, 4, nil
}

func checkConvScalars(node *Node, p cpu.ConvParams, depthwise bool) error {
	if p.PadLeft < 0 || p.PadRight < 0 || p.PadTop < 0 || p.PadBottom < 0 {
		return fmt.Errorf("%s: padding must be non-negative, got %d/%d/%d/%d",
			node.Type, p.PadLeft, p.PadRight, p.PadTop, p.PadBottom)
	}
	if p.StrideW <= 0 || p.StrideH <= 0 {
		return fmt.Errorf("%s: strides must be positive, got %d/%d", node.Type, p.StrideW, p.StrideH)
	}
	if depthwise && p.Multiplier <= 0 {
		return fmt.Errorf("%s: channel multiplier must be positive, got %d", node.Type, p.Multiplier)
	}
	return nil
}
