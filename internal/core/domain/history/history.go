/*
Package history defines the directory history used by the cd builtin and the
cdh recall utility.
*/
package history

import (
	"errors"
	"fmt"
)

// Capacity is the number of directories the history remembers.
const Capacity = 10

var (
	// ErrInvalidSelection is returned for a key that is neither a slot digit nor a slot label.
	ErrInvalidSelection = errors.New("invalid index")
	// ErrEmptySlot is returned for a well-formed key that points at a slot holding no directory.
	ErrEmptySlot = errors.New("no directory recorded")
)

/*
Entry is one occupied slot as presented to the user. Label 'a' is the most
recently filled slot, 'b' the one before it, and so on down to 'j'.
*/
type Entry struct {
	Slot  int
	Label byte
	Path  string
}

/*
DirHistory is a fixed-capacity ring of directories. Push writes at
cursor mod Capacity and advances the cursor, overwriting the oldest entry
once the ring is full. The zero value is an empty history ready to use.
*/
type DirHistory struct {
	slots  [Capacity]string
	cursor int
}

// Push records path as the most recent entry.
func (h *DirHistory) Push(path string) {
	h.slots[h.cursor%Capacity] = path
	h.cursor++
}

// Empty reports whether no directory has ever been recorded.
func (h *DirHistory) Empty() bool {
	return h.cursor == 0
}

// Len returns the number of occupied slots.
func (h *DirHistory) Len() int {
	return min(h.cursor, Capacity)
}

// At returns the path stored in slot, or "" if the slot is empty or out of range.
func (h *DirHistory) At(slot int) string {
	if slot < 0 || slot >= Capacity {
		return ""
	}
	return h.slots[slot]
}

// Entries lists occupied slots from the most recently filled to the oldest.
func (h *DirHistory) Entries() []Entry {
	n := h.Len()
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		slot := (h.cursor - 1 - i) % Capacity
		entries = append(entries, Entry{
			Slot:  slot,
			Label: byte('a' + i),
			Path:  h.slots[slot],
		})
	}
	return entries
}

/*
Resolve maps a recall key to an entry. A digit names a slot directly and is
accepted even when that slot was never filled; a letter 'a'-'j' names the
entry carrying that label. Both cases report ErrEmptySlot when nothing is
stored there. Any other key is ErrInvalidSelection.
*/
func (h *DirHistory) Resolve(key byte) (Entry, error) {
	switch {
	case key >= '0' && key <= '9':
		slot := int(key - '0')
		for _, e := range h.Entries() {
			if e.Slot == slot {
				return e, nil
			}
		}
		return Entry{Slot: slot}, fmt.Errorf("slot %d: %w", slot, ErrEmptySlot)
	case key >= 'a' && key < 'a'+Capacity:
		idx := int(key - 'a')
		entries := h.Entries()
		if idx >= len(entries) {
			return Entry{Slot: -1, Label: key}, fmt.Errorf("label %c: %w", key, ErrEmptySlot)
		}
		return entries[idx], nil
	default:
		return Entry{Slot: -1}, fmt.Errorf("%q: %w", key, ErrInvalidSelection)
	}
}
