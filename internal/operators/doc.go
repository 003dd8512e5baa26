// Package operators maps NNAPI operation names to reference kernel invocations.
//
// NNAPI operations carry all configuration as positional operands, so a handler
// decodes its scalar operands (padding, strides, multiplier, fused activation)
// from the input list, validates them, and then delegates to the backend.
//
// Supported operations:
//   - Convolution: DEPTHWISE_CONV_2D, CONV_2D (explicit and implicit padding)
//   - Element-wise: ADD, MUL
//   - Activation: RELU, RELU1, RELU6, ABS
//   - Shape: RESHAPE
package operators
