package engine

import (
	"errors"

	"github.com/piwi3910/WallHang/internal/model"
)

var (
	ErrUnknownFrame   = errors.New("unknown frame")
	ErrDuplicateFrame = errors.New("frame already placed")
)

// OccupiedEntry is one placed frame footprint.
type OccupiedEntry struct {
	FrameID string
	Rect    model.Rect
}

// Registry is the authoritative set of placed footprints, keyed by frame ID.
// It does not check for overlaps: callers validate a rect before they
// insert or update it.
type Registry struct {
	entries []OccupiedEntry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Insert adds a new entry.
func (r *Registry) Insert(id string, rect model.Rect) error {
	if _, ok := r.index[id]; ok {
		return ErrDuplicateFrame
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, OccupiedEntry{FrameID: id, Rect: rect})
	return nil
}

// Update replaces the rect of an existing entry in place.
func (r *Registry) Update(id string, rect model.Rect) error {
	i, ok := r.index[id]
	if !ok {
		return ErrUnknownFrame
	}
	r.entries[i].Rect = rect
	return nil
}

// Remove deletes the entry for id. Returns false if there was none.
func (r *Registry) Remove(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].FrameID] = j
	}
	return true
}

// Get returns the rect stored for id.
func (r *Registry) Get(id string) (model.Rect, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Rect{}, false
	}
	return r.entries[i].Rect, true
}

func (r *Registry) Len() int { return len(r.entries) }

// All returns every entry except the one for exclude, which may be empty.
// A frame passes its own ID so it is never tested against itself.
func (r *Registry) All(exclude string) []OccupiedEntry {
	out := make([]OccupiedEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.FrameID != exclude {
			out = append(out, e)
		}
	}
	return out
}

// Conflicts reports whether rect overlaps any entry other than exclude.
func (r *Registry) Conflicts(rect model.Rect, exclude string, padding float64) bool {
	for _, e := range r.entries {
		if e.FrameID == exclude {
			continue
		}
		if Overlaps(rect, e.Rect, padding) {
			return true
		}
	}
	return false
}
