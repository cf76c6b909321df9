package history

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tallyhq/tally/internal/engine/operation"
	"github.com/tallyhq/tally/internal/engine/record"
)

func TestWriteRowsFormat(t *testing.T) {
	var buf bytes.Buffer
	r := rec(t, operation.Add, "10", "5", "15")

	if err := writeRows(&buf, []record.Record{r}); err != nil {
		t.Fatalf("writeRows failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "operation,first_operand,second_operand,result,timestamp" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "add,10,5,15,") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteRowsEmptyKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRows(&buf, nil); err != nil {
		t.Fatalf("writeRows failed: %v", err)
	}

	records, err := readRows(&buf)
	if err != nil {
		t.Fatalf("readRows failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestReadRowsReportsRowNumber(t *testing.T) {
	data := "operation,first_operand,second_operand,result,timestamp\n" +
		"add,1,2,3,2024-01-01T00:00:00Z\n" +
		"divide,1,zero,3,2024-01-01T00:00:00Z\n"

	_, err := readRows(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q should name row 3", err)
	}
}
