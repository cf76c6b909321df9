package history

import (
	"iter"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tallyhq/tally/internal/engine/record"
)

// Observer is notified after a new record enters the log.
// Observers run on the appending goroutine and must not call back
// into the History.
type Observer interface {
	RecordAppended(rec record.Record)
}

// Options configures a History.
type Options struct {
	// MaxEntries bounds the active log. Values <= 0 fall back to 1000.
	MaxEntries int

	// AutoSave writes the log to Path after every successful append.
	AutoSave bool

	// Path is the durable history file used by Save, Load and auto-save.
	Path string

	// Logger receives persistence and lifecycle events.
	Logger zerolog.Logger
}

// History manages the calculation log and its undo/redo state.
type History struct {
	mu sync.Mutex

	entries   []record.Record
	redoStack []record.Record

	observers []Observer

	// Configuration
	maxEntries int
	autoSave   bool
	path       string
	log        zerolog.Logger
}

// New creates a history manager.
func New(opts Options) *History {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 1000 // Default
	}
	return &History{
		maxEntries: opts.MaxEntries,
		autoSave:   opts.AutoSave,
		path:       opts.Path,
		log:        opts.Logger,
	}
}

// AddObserver registers an observer for appended records.
func (h *History) AddObserver(obs Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, obs)
}

// Append adds a record to the end of the log.
// The redo stack is cleared unconditionally and the oldest entries are
// evicted while the log exceeds MaxEntries. With auto-save enabled a
// failed save is returned for reporting, but the in-memory append
// stands either way.
func (h *History) Append(rec record.Record) error {
	h.mu.Lock()
	h.entries = append(h.entries, rec)
	h.redoStack = nil
	h.trimLocked()
	observers := h.observers
	autoSave := h.autoSave && h.path != ""
	h.mu.Unlock()

	for _, obs := range observers {
		obs.RecordAppended(rec)
	}

	if autoSave {
		if err := h.Save(); err != nil {
			h.log.Warn().Err(err).Msg("auto-save failed, history kept in memory")
			return err
		}
	}
	return nil
}

// trimLocked evicts oldest entries until the log fits maxEntries.
func (h *History) trimLocked() {
	if len(h.entries) > h.maxEntries {
		excess := len(h.entries) - h.maxEntries
		h.entries = h.entries[excess:]
	}
}

// Undo pops the most recent record off the log onto the redo stack and
// returns it for display.
func (h *History) Undo() (record.Record, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return record.Record{}, ErrNothingToUndo
	}

	rec := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	h.redoStack = append(h.redoStack, rec)
	return rec, nil
}

// Redo re-appends the most recently undone record at the end of the
// log and returns it. The redo stack is not cleared, so a run of undos
// can be redone in sequence.
func (h *History) Redo() (record.Record, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return record.Record{}, ErrNothingToRedo
	}

	rec := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.entries = append(h.entries, rec)
	h.trimLocked()
	return rec, nil
}

// Clear removes all records and redo state. Irreversible.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	h.redoStack = nil
}

// All returns a restartable iterator over the log in chronological
// order. The iteration sees a snapshot; mutating the history while
// ranging is safe.
func (h *History) All() iter.Seq[record.Record] {
	snapshot := h.Records()
	return func(yield func(record.Record) bool) {
		for _, rec := range snapshot {
			if !yield(rec) {
				return
			}
		}
	}
}

// Records returns a snapshot of the log in chronological order.
func (h *History) Records() []record.Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := make([]record.Record, len(h.entries))
	copy(snapshot, h.entries)
	return snapshot
}

// Len returns the number of records in the active log.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// RedoCount returns the number of records awaiting redo.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// MaxEntries returns the configured log bound.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

// Path returns the durable history file path.
func (h *History) Path() string {
	return h.path
}
