package fixture

import (
	"fmt"

	"github.com/born-ml/conformance/internal/tensor"
)

// OperandType is the NNAPI operand type code.
type OperandType int

// Supported operand types. Codes follow the NNAPI numbering.
const (
	TypeFloat32       OperandType = 0
	TypeInt32         OperandType = 1
	TypeUint32        OperandType = 2
	TypeTensorFloat32 OperandType = 3
	TypeTensorInt32   OperandType = 4
	TypeBool          OperandType = 6
	TypeTensorFloat16 OperandType = 8
	TypeTensorBool8   OperandType = 9
	TypeFloat16       OperandType = 10
)

var operandTypeNames = map[OperandType]string{
	TypeFloat32:       "FLOAT32",
	TypeInt32:         "INT32",
	TypeUint32:        "UINT32",
	TypeTensorFloat32: "TENSOR_FLOAT32",
	TypeTensorInt32:   "TENSOR_INT32",
	TypeBool:          "BOOL",
	TypeTensorFloat16: "TENSOR_FLOAT16",
	TypeTensorBool8:   "TENSOR_BOOL8",
	TypeFloat16:       "FLOAT16",
}

// String returns the NNAPI name, e.g. "TENSOR_FLOAT32".
func (t OperandType) String() string {
	if name, ok := operandTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OperandType(%d)", int(t))
}

// ParseOperandType parses an NNAPI operand type name.
func ParseOperandType(name string) (OperandType, error) {
	for t, n := range operandTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown operand type %q", name)
}

// Valid reports whether t is a supported operand type.
func (t OperandType) Valid() bool {
	_, ok := operandTypeNames[t]
	return ok
}

// IsScalar reports whether operands of this type are rank-0.
func (t OperandType) IsScalar() bool {
	switch t {
	case TypeFloat32, TypeInt32, TypeUint32, TypeBool, TypeFloat16:
		return true
	default:
		return false
	}
}

// DataType returns the tensor element type used to materialize the operand.
func (t OperandType) DataType() tensor.DataType {
	switch t {
	case TypeFloat32, TypeTensorFloat32:
		return tensor.Float32
	case TypeFloat16, TypeTensorFloat16:
		return tensor.Float16
	case TypeInt32, TypeTensorInt32:
		return tensor.Int32
	case TypeUint32:
		return tensor.Uint32
	case TypeBool, TypeTensorBool8:
		return tensor.Bool
	default:
		panic(fmt.Sprintf("operand type %s has no tensor data type", t))
	}
}

// Role is the part an operand plays in the model.
type Role int

// Operand roles.
const (
	RoleInput Role = iota
	RoleParameter
	RoleOutput
	RoleInternal
)

var roleNames = [...]string{"input", "parameter", "output", "internal"}

// String returns the lower-case role name.
func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole parses a role name as produced by Role.String.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operand role %q", name)
}

// OperandRef names a declared operand. Builders hand them out; operations and
// examples refer to operands through them.
type OperandRef string

// Name returns the operand name.
func (r OperandRef) Name() string {
	return string(r)
}

// Operand is a tensor or scalar declaration.
type Operand struct {
	Name  string
	Role  Role
	Type  OperandType
	Shape tensor.Shape // empty for scalars
	Value []float64    // literal values, parameters only
}

// Ref returns a reference to the operand.
func (o Operand) Ref() OperandRef {
	return OperandRef(o.Name)
}

// NumElements is the number of values the operand holds.
func (o Operand) NumElements() int {
	return o.Shape.NumElements()
}

// ByteSize is the storage size of the materialized operand.
func (o Operand) ByteSize() int {
	return o.NumElements() * o.Type.DataType().Size()
}

// Clone returns a deep copy.
func (o Operand) Clone() Operand {
	o.Shape = o.Shape.Clone()
	if o.Value != nil {
		o.Value = append([]float64(nil), o.Value...)
	}
	return o
}

// Tensor materializes a parameter operand as a tensor.
func (o Operand) Tensor() (*tensor.RawTensor, error) {
	if o.Role != RoleParameter {
		return nil, fmt.Errorf("operand %q is an %s, only parameters carry values", o.Name, o.Role)
	}
	return TensorFor(o, o.Value)
}

// TensorFor materializes values with the operand's type and shape.
func TensorFor(o Operand, values []float64) (*tensor.RawTensor, error) {
	raw, err := tensor.FromValues(o.Shape, o.Type.DataType(), values)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", o.Name, err)
	}
	return raw, nil
}
