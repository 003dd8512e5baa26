package fixture

import "github.com/pkg/errors"

// Validation errors. Build wraps them with the offending operand or operation.
var (
	ErrEmptyName           = errors.New("empty name")
	ErrDuplicateOperand    = errors.New("operand declared more than once")
	ErrUndeclaredOperand   = errors.New("undeclared operand")
	ErrInvalidType         = errors.New("invalid operand type")
	ErrInvalidShape        = errors.New("invalid shape")
	ErrValueCount          = errors.New("value count does not match shape")
	ErrInvalidValue        = errors.New("value not representable by operand type")
	ErrUnexpectedValue     = errors.New("only parameters carry values")
	ErrEmptyModel          = errors.New("model has no operations")
	ErrEdgeConsistency     = errors.New("inconsistent operand definition")
	ErrCyclicGraph         = errors.New("model graph is cyclic")
	ErrNoExamples          = errors.New("fixture has no examples")
	ErrMissingExampleValue = errors.New("example does not cover operand")
	ErrExampleRole         = errors.New("example value for operand of wrong role")
	ErrDuplicateFixture    = errors.New("fixture registered more than once")
)
