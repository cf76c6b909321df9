package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/tallyhq/tally/internal/engine/record"
)

// Save writes the active log to the configured path.
func (h *History) Save() error {
	return h.SaveTo(h.path)
}

// SaveTo serializes the active log (never the redo stack) as CSV at
// path. The file is written to a temporary sibling and renamed into
// place, so an existing valid file survives any failure.
func (h *History) SaveTo(path string) error {
	if path == "" {
		return persistErr("save", path, errors.New("no history file configured"))
	}
	snapshot := h.Records()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return persistErr("save", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return persistErr("save", path, err)
	}

	if err := writeRows(tmp, snapshot); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return persistErr("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return persistErr("save", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return persistErr("save", path, err)
	}

	h.log.Debug().Int("records", len(snapshot)).Str("path", path).Msg("history saved")
	return nil
}

// Load replaces the log from the configured path.
func (h *History) Load() error {
	return h.LoadFrom(h.path)
}

// LoadFrom reads the CSV file at path, replacing the log wholesale and
// clearing the redo stack. A missing file, unreadable data, or any
// malformed row fails the load with the live history untouched.
func (h *History) LoadFrom(path string) error {
	if path == "" {
		return persistErr("load", path, errors.New("no history file configured"))
	}

	f, err := os.Open(path)
	if err != nil {
		return persistErr("load", path, err)
	}
	defer f.Close()

	records, err := readRows(f)
	if err != nil {
		return persistErr("load", path, err)
	}

	h.mu.Lock()
	h.entries = records
	h.redoStack = nil
	h.trimLocked()
	h.mu.Unlock()

	h.log.Info().Int("records", len(records)).Str("path", path).Msg("history loaded")
	return nil
}

// writeRows emits the header row followed by one row per record.
func writeRows(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record.FieldNames); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readRows parses the header and every data row, failing on the first
// malformed row so the caller can keep its current state.
func readRows(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(record.FieldNames)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty history file, missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, record.FieldNames) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var records []record.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rec, err := record.FromFields(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}
}
