package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/engine/operation"
)

// FieldNames is the durable-format header, in column order.
var FieldNames = []string{"operation", "first_operand", "second_operand", "result", "timestamp"}

// Fields maps the record to its durable row: operator tag, decimal
// strings, and an RFC 3339 timestamp. Column order matches FieldNames.
func (r Record) Fields() []string {
	return []string{
		string(r.Op),
		r.A.String(),
		r.B.String(),
		r.Result.String(),
		r.Timestamp.Format(time.RFC3339Nano),
	}
}

// FromFields rebuilds a Record from one durable row.
// Any malformed field fails the whole row; the loaded record gets a
// fresh ID since identity is not persisted.
func FromFields(fields []string) (Record, error) {
	if len(fields) != len(FieldNames) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(FieldNames), len(fields))
	}

	op, err := operation.Parse(fields[0])
	if err != nil {
		return Record{}, err
	}

	a, err := decimal.NewFromString(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("first operand %q: %w", fields[1], err)
	}
	b, err := decimal.NewFromString(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("second operand %q: %w", fields[2], err)
	}
	result, err := decimal.NewFromString(fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("result %q: %w", fields[3], err)
	}

	ts, err := time.Parse(time.RFC3339Nano, fields[4])
	if err != nil {
		return Record{}, fmt.Errorf("timestamp %q: %w", fields[4], err)
	}

	return Record{
		ID:        uuid.New(),
		Op:        op,
		A:         a,
		B:         b,
		Result:    result,
		Timestamp: ts,
	}, nil
}
