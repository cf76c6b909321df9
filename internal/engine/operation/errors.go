package operation

import "errors"

// Domain errors for operator evaluation.
var (
	// ErrUnknownOperator indicates a tag outside the supported set.
	ErrUnknownOperator = errors.New("unknown operation")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("division by zero is not allowed")

	// ErrNegativeExponent indicates a negative power exponent.
	ErrNegativeExponent = errors.New("negative exponents not supported")

	// ErrNegativeRoot indicates a root of a negative number.
	ErrNegativeRoot = errors.New("cannot calculate root of negative number")

	// ErrZeroRoot indicates a zeroth root.
	ErrZeroRoot = errors.New("zero root is undefined")

	// ErrResultOverflow indicates the result exceeded the representable range.
	ErrResultOverflow = errors.New("result out of range")
)
