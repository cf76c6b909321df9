package operation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		a, b string
		want string
	}{
		{"add", Add, "10", "5", "15"},
		{"add negatives", Add, "-2.5", "-2.5", "-5"},
		{"subtract", Subtract, "10", "5", "5"},
		{"subtract to negative", Subtract, "3", "7", "-4"},
		{"multiply", Multiply, "6", "7", "42"},
		{"multiply fraction", Multiply, "0.5", "0.5", "0.25"},
		{"divide", Divide, "20", "4", "5"},
		{"divide fraction", Divide, "1", "8", "0.125"},
		{"power", Power, "2", "10", "1024"},
		{"power zero exponent", Power, "9", "0", "1"},
		{"root", Root, "27", "3", "3"},
		{"root square", Root, "81", "2", "9"},
		{"modulus", Modulus, "10", "3", "1"},
		{"int divide", IntDivide, "10", "3", "3"},
		{"int divide negative", IntDivide, "-7", "2", "-3"},
		{"percent", Percent, "25", "200", "12.5"},
		{"abs diff", AbsDiff, "3", "10", "7"},
		{"abs diff reversed", AbsDiff, "10", "3", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, dec(tt.a), dec(tt.b))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Errorf("Apply(%s, %s, %s) = %s, want %s", tt.op, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestApplyDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		a, b string
		want error
	}{
		{"divide by zero", Divide, "1", "0", ErrDivisionByZero},
		{"modulus by zero", Modulus, "1", "0", ErrDivisionByZero},
		{"int divide by zero", IntDivide, "1", "0", ErrDivisionByZero},
		{"percent of zero", Percent, "1", "0", ErrDivisionByZero},
		{"negative exponent", Power, "2", "-1", ErrNegativeExponent},
		{"negative root", Root, "-4", "2", ErrNegativeRoot},
		{"zero root", Root, "4", "0", ErrZeroRoot},
		{"unknown operator", Operator("cube"), "1", "2", ErrUnknownOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.op, dec(tt.a), dec(tt.b))
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyRootApproximate(t *testing.T) {
	// Float-backed root; compare within a small tolerance.
	got, err := Apply(Root, dec("2"), dec("2"))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	diff := got.Sub(dec("1.4142135623730951")).Abs()
	if diff.GreaterThan(dec("0.0000000001")) {
		t.Errorf("sqrt(2) = %s, outside tolerance", got)
	}
}

func TestParse(t *testing.T) {
	for _, op := range Operators() {
		got, err := Parse(string(op))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", op, err)
		}
		if got != op {
			t.Errorf("Parse(%q) = %q", op, got)
		}
	}

	if _, err := Parse("factorial"); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("Parse error = %v, want ErrUnknownOperator", err)
	}
}

func TestOperatorValid(t *testing.T) {
	if !Add.Valid() {
		t.Error("add should be valid")
	}
	if Operator("").Valid() {
		t.Error("empty tag should not be valid")
	}
	if Operator("ADD").Valid() {
		t.Error("tags are case sensitive")
	}
}

func TestOperatorsIsACopy(t *testing.T) {
	ops := Operators()
	ops[0] = Operator("mutated")
	if Operators()[0] != Add {
		t.Error("Operators() exposed internal slice")
	}
}
