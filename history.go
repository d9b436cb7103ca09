package pixedit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one committed, PNG-encoded snapshot.
type Entry struct {
	ID          uuid.UUID
	Label       string
	Data        []byte
	Adjustments Adjustments
	CreatedAt   time.Time
}

// NewEntry creates an entry with a fresh ID.
func NewEntry(label string, data []byte, a Adjustments) Entry {
	return Entry{
		ID:          uuid.New(),
		Label:       label,
		Data:        data,
		Adjustments: a,
		CreatedAt:   time.Now(),
	}
}

// History is a linear undo/redo log. Pushing after an undo discards the redo branch.
// The zero value is empty and ready to use. History is not safe for concurrent use.
type History struct {
	entries []Entry
	index   int

	// Limit caps the number of entries, values below 2 mean unlimited.
	// The first entry is never evicted.
	Limit int
}

// Push truncates entries after the current index, appends e and makes it current.
func (h *History) Push(e Entry) {
	if len(h.entries) > 0 {
		h.entries = h.entries[: h.index+1 : h.index+1]
	}
	h.entries = append(h.entries, e)
	h.index = len(h.entries) - 1

	if h.Limit > 1 && len(h.entries) > h.Limit {
		drop := len(h.entries) - h.Limit
		kept := make([]Entry, 0, h.Limit)
		kept = append(kept, h.entries[0])
		kept = append(kept, h.entries[1+drop:]...)
		h.entries = kept
		h.index = len(h.entries) - 1
	}
}

// Undo moves back one entry. It is a no-op returning false at the first entry.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo moves forward one entry. It is a no-op returning false at the last entry.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Reset clears the log down to the first entry, if any.
func (h *History) Reset() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	h.entries = h.entries[:1:1]
	h.index = 0
	return h.entries[0], true
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = nil
	h.index = 0
}

// Current returns the entry at the active index.
func (h *History) Current() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[h.index], true
}

// CanUndo reports whether Undo would move.
func (h *History) CanUndo() bool { return len(h.entries) > 0 && h.index > 0 }

// CanRedo reports whether Redo would move.
func (h *History) CanRedo() bool { return len(h.entries) > 0 && h.index < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Index returns the active index, 0 when empty.
func (h *History) Index() int { return h.index }

// Entries returns a copy of the log in chronological order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}
