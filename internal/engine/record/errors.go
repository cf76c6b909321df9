package record

import "errors"

// ErrInvalidOperand indicates an operand that is not a valid number or
// exceeds the configured magnitude bound.
var ErrInvalidOperand = errors.New("invalid operand")
