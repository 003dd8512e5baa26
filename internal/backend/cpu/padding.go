package cpu

import "fmt"

// PaddingScheme is the NNAPI implicit padding code.
type PaddingScheme int

// Implicit padding codes.
const (
	PaddingSame  PaddingScheme = 1
	PaddingValid PaddingScheme = 2
)

// String returns the NNAPI name of the scheme.
func (p PaddingScheme) String() string {
	switch p {
	case PaddingSame:
		return "SAME"
	case PaddingValid:
		return "VALID"
	default:
		return fmt.Sprintf("PaddingScheme(%d)", int(p))
	}
}

// ExplicitPadding resolves an implicit padding scheme along one spatial axis
// into head and tail amounts.
//
// SAME keeps out = ceil(in/stride) and puts the odd pixel at the tail;
// VALID never pads.
func ExplicitPadding(scheme PaddingScheme, in, stride, kernel int) (head, tail int, err error) {
	if stride <= 0 {
		return 0, 0, fmt.Errorf("stride must be positive, got %d", stride)
	}
	switch scheme {
	case PaddingValid:
		return 0, 0, nil
	case PaddingSame:
		out := (in + stride - 1) / stride
		needed := max(0, (out-1)*stride+kernel-in)
		head = needed / 2
		return head, needed - head, nil
	default:
		return 0, 0, fmt.Errorf("unknown padding scheme %d", int(scheme))
	}
}
