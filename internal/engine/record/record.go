// Package record defines the immutable value object for one completed
// calculation: two operands, an operator, the rounded result, and a
// timestamp. Records are created once and never mutated; the history
// log removes or re-adds whole records instead of editing them.
package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/engine/operation"
)

// Bounds carries the numeric limits a Record is constructed under.
type Bounds struct {
	// MaxMagnitude is the largest absolute operand value accepted.
	MaxMagnitude decimal.Decimal

	// Precision is the number of decimal places the result is rounded to.
	Precision int32
}

// Record is one completed calculation.
// Value semantics: two records with the same operator, operands and
// result are interchangeable. ID and Timestamp identify the concrete
// instance and are excluded from equality.
type Record struct {
	ID        uuid.UUID
	Op        operation.Operator
	A         decimal.Decimal
	B         decimal.Decimal
	Result    decimal.Decimal
	Timestamp time.Time
}

// New builds a Record from validated inputs.
// The operands must fall within lim.MaxMagnitude and the operator must
// be a known tag; result is rounded to lim.Precision.
func New(op operation.Operator, a, b, result decimal.Decimal, lim Bounds) (Record, error) {
	if !op.Valid() {
		return Record{}, fmt.Errorf("%w: %q", operation.ErrUnknownOperator, op)
	}
	if err := checkMagnitude(a, lim.MaxMagnitude); err != nil {
		return Record{}, err
	}
	if err := checkMagnitude(b, lim.MaxMagnitude); err != nil {
		return Record{}, err
	}

	return Record{
		ID:        uuid.New(),
		Op:        op,
		A:         a,
		B:         b,
		Result:    round(result, lim.Precision),
		Timestamp: time.Now(),
	}, nil
}

// ParseOperand converts raw user input into a decimal operand,
// enforcing the configured magnitude bound.
func ParseOperand(input string, max decimal.Decimal) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid number format: %q", ErrInvalidOperand, input)
	}
	if err := checkMagnitude(d, max); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func checkMagnitude(d, max decimal.Decimal) error {
	if max.Sign() > 0 && d.Abs().GreaterThan(max) {
		return fmt.Errorf("%w: value exceeds maximum allowed %s", ErrInvalidOperand, max)
	}
	return nil
}

// round truncates trailing noise beyond the display precision without
// padding exact values with zeros.
func round(d decimal.Decimal, precision int32) decimal.Decimal {
	if precision <= 0 {
		return d
	}
	rounded := d.Round(precision)
	if rounded.Equal(d) {
		return d
	}
	return rounded
}

// Equal reports value equality: operator, operands and result.
func (r Record) Equal(other Record) bool {
	return r.Op == other.Op &&
		r.A.Equal(other.A) &&
		r.B.Equal(other.B) &&
		r.Result.Equal(other.Result)
}

// String renders the record in the display form "op(a, b) = result".
func (r Record) String() string {
	return fmt.Sprintf("%s(%s, %s) = %s", r.Op, r.A, r.B, r.Result)
}
