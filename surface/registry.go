package surface

import (
	"iter"
	"slices"

	"github.com/lixenwraith/reorder/container"
)

// Entry is a registered container with its capabilities detected at registration
// Each typed view is nil when the container lacks that capability
type Entry struct {
	Container container.Container
	Caps      container.Capability

	Drag   container.Draggable
	Drop   container.Droppable
	Style  container.Styler
	Scroll container.Scroller
	Life   container.Lifecycle
	Accept container.Acceptor
}

func newEntry(c container.Container) Entry {
	e := Entry{Container: c}
	var ok bool
	if e.Drag, ok = c.(container.Draggable); ok {
		e.Caps |= container.CapDrag
	}
	if e.Drop, ok = c.(container.Droppable); ok {
		e.Caps |= container.CapDrop
	}
	if e.Style, ok = c.(container.Styler); ok {
		e.Caps |= container.CapStyle
	}
	if e.Scroll, ok = c.(container.Scroller); ok {
		e.Caps |= container.CapScroll
	}
	if e.Life, ok = c.(container.Lifecycle); ok {
		e.Caps |= container.CapLifecycle
	}
	if e.Accept, ok = c.(container.Acceptor); ok {
		e.Caps |= container.CapAccept
	}
	return e
}

// Registry is the ordered set of containers participating in drags
// Order is registration order and decides overlap ties
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends c and returns its capabilities, re-adding a known container keeps its position
func (r *Registry) Add(c container.Container) container.Capability {
	if e, ok := r.Lookup(c); ok {
		return e.Caps
	}
	e := newEntry(c)
	r.entries = append(r.entries, e)
	return e.Caps
}

// Remove drops c, reporting whether it was registered
func (r *Registry) Remove(c container.Container) bool {
	n := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e Entry) bool { return e.Container == c })
	return len(r.entries) != n
}

// Lookup returns the entry for c
func (r *Registry) Lookup(c container.Container) (Entry, bool) {
	i := slices.IndexFunc(r.entries, func(e Entry) bool { return e.Container == c })
	if i < 0 {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Len returns the number of registered containers
func (r *Registry) Len() int {
	return len(r.entries)
}

// All iterates entries in registration order
func (r *Registry) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// With iterates entries having every capability in caps
func (r *Registry) With(caps container.Capability) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if e.Caps.Has(caps) && !yield(e) {
				return
			}
		}
	}
}

// Any reports whether some entry has every capability in caps
func (r *Registry) Any(caps container.Capability) bool {
	for range r.With(caps) {
		return true
	}
	return false
}
