// Package fixturefile reads and writes fixtures as HCL.
//
// A file holds any number of fixture blocks:
//
//	fixture "add_float" {
//	  operand "op1" {
//	    role  = "input"
//	    type  = "TENSOR_FLOAT32"
//	    shape = [2]
//	  }
//	  operand "act" {
//	    role  = "parameter"
//	    type  = "INT32"
//	    value = [0]
//	  }
//	  operation "ADD" {
//	    inputs  = ["op1", "op1", "act"]
//	    outputs = ["op2"]
//	  }
//	  example {
//	    inputs  = { op1 = [1, 2] }
//	    outputs = { op2 = [2, 4] }
//	  }
//	}
//
// Scalars omit shape. Only parameters carry a value attribute. Encode emits
// the canonical form, so encoding a decoded file reproduces it byte for byte.
package fixturefile
