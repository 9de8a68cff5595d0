package container

import "slices"

// Sequence is the ordered backing store of a container
type Sequence[T comparable] struct {
	items []T
}

// NewSequence copies items into a new sequence
func NewSequence[T comparable](items []T) *Sequence[T] {
	return &Sequence[T]{items: slices.Clone(items)}
}

// Len returns the item count
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the item at index
func (s *Sequence[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[index], true
}

// IndexOf returns the first index holding item
func (s *Sequence[T]) IndexOf(item T) (int, bool) {
	i := slices.Index(s.items, item)
	return i, i >= 0
}

// Items returns a copy of the current order
func (s *Sequence[T]) Items() []T {
	return slices.Clone(s.items)
}

// Move relocates the item at from to index to, shifting the items between
// Runs in place without allocating; invalid indices are ignored
func (s *Sequence[T]) Move(from, to int) {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	v := s.items[from]
	if from < to {
		copy(s.items[from:to], s.items[from+1:to+1])
	} else {
		copy(s.items[to+1:from+1], s.items[to:from])
	}
	s.items[to] = v
}

// Insert places item at index, clamped to [0, Len()]
func (s *Sequence[T]) Insert(item T, at int) {
	at = max(0, min(at, len(s.items)))
	s.items = slices.Insert(s.items, at, item)
}

// Delete removes the item at index, invalid indices are ignored
func (s *Sequence[T]) Delete(at int) {
	if at < 0 || at >= len(s.items) {
		return
	}
	s.items = slices.Delete(s.items, at, at+1)
}
