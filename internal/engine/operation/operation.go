// Package operation defines the calculator's arithmetic operations.
//
// An Operator is a tag from a closed set. Apply evaluates an operator
// against two decimal operands as a pure function; all state lives with
// the caller.
package operation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Operator identifies one of the supported arithmetic operations.
// The string value doubles as the REPL command tag and the tag stored
// in the history file.
type Operator string

// Supported operators.
const (
	Add       Operator = "add"
	Subtract  Operator = "subtract"
	Multiply  Operator = "multiply"
	Divide    Operator = "divide"
	Power     Operator = "power"
	Root      Operator = "root"
	Modulus   Operator = "modulus"
	IntDivide Operator = "int_divide"
	Percent   Operator = "percent"
	AbsDiff   Operator = "abs_diff"
)

// operators lists every operator in registration order.
// Order matters only for help text.
var operators = []Operator{
	Add, Subtract, Multiply, Divide, Power,
	Root, Modulus, IntDivide, Percent, AbsDiff,
}

// Operators returns all supported operators in a stable order.
func Operators() []Operator {
	result := make([]Operator, len(operators))
	copy(result, operators)
	return result
}

// Parse resolves a command tag to an Operator.
// Returns ErrUnknownOperator for tags outside the supported set.
func Parse(tag string) (Operator, error) {
	op := Operator(tag)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, tag)
	}
	return op, nil
}

// Valid returns true if the operator is one of the supported set.
func (op Operator) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide, Power,
		Root, Modulus, IntDivide, Percent, AbsDiff:
		return true
	}
	return false
}

// String returns the operator's command tag.
func (op Operator) String() string {
	return string(op)
}

var oneHundred = decimal.NewFromInt(100)

// Apply evaluates op against the operands a and b.
// Domain violations (zero divisors, negative exponents, invalid roots)
// return the corresponding sentinel error; the result is unrounded.
func Apply(op Operator, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Subtract:
		return a.Sub(b), nil
	case Multiply:
		return a.Mul(b), nil
	case Divide:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Div(b), nil
	case Power:
		if b.IsNegative() {
			return decimal.Zero, ErrNegativeExponent
		}
		return fromFloat(math.Pow(a.InexactFloat64(), b.InexactFloat64()))
	case Root:
		if b.IsZero() {
			return decimal.Zero, ErrZeroRoot
		}
		if a.IsNegative() {
			return decimal.Zero, ErrNegativeRoot
		}
		return fromFloat(math.Pow(a.InexactFloat64(), 1/b.InexactFloat64()))
	case Modulus:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Mod(b), nil
	case IntDivide:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		q, _ := a.QuoRem(b, 0)
		return q, nil
	case Percent:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Div(b).Mul(oneHundred), nil
	case AbsDiff:
		return a.Sub(b).Abs(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// fromFloat converts a float result back to decimal, rejecting
// non-finite values produced by overflow.
func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrResultOverflow
	}
	return decimal.NewFromFloat(f), nil
}
