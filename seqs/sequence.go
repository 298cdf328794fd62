package seqs

import "iter"

// Sequence is a lazily evaluated, possibly restartable, ordered source
// of items with a chainable query surface.
//
// A Sequence built over a slice or an iter.Seq hands out a fresh,
// independent cursor for every traversal and can therefore be iterated
// any number of times. A Sequence built over a one-shot stepper hands
// out the same cursor every time: a second traversal yields no further
// items (state exhaustion, not an error).
//
// No operator does any work at construction time; items are pulled on
// demand when a terminal call (ToSlice, Count, First, explicit
// iteration) drives the cursor chain.
type Sequence[T any] struct {
	newCursor func() Cursor[T]
}

// Cursor obtains a cursor for one traversal. Callers own it and should
// close it when done.
func (s *Sequence[T]) Cursor() Cursor[T] { return s.newCursor() }

// FromSlice wraps a slice. The slice is not copied; the sequence sees
// whatever the slice holds when a traversal starts.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{newCursor: func() Cursor[T] {
		return newSliceCursor(items)
	}}
}

// Of builds a sequence from the given values.
func Of[T any](values ...T) *Sequence[T] { return FromSlice(values) }

// Empty is the sequence with no items.
func Empty[T any]() *Sequence[T] { return FromSlice[T](nil) }

// FromSeq wraps a restartable iterable. Each traversal ranges over src
// from the beginning.
func FromSeq[T any](src iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{newCursor: func() Cursor[T] {
		return newSeqCursor(src)
	}}
}

// FromNext wraps a one-shot stepper: next returns the next element and
// whether one was available. The resulting sequence can be traversed
// only once.
func FromNext[T any](next func() (T, bool)) *Sequence[T] {
	c := newStepCursor(next, nil)
	return &Sequence[T]{newCursor: func() Cursor[T] { return c }}
}

// FromCursor wraps an existing cursor. The sequence is single-pass
// unless the cursor supports Reset, in which case each traversal
// rewinds it.
func FromCursor[T any](c Cursor[T]) *Sequence[T] {
	return &Sequence[T]{newCursor: func() Cursor[T] {
		if c.CanReset() {
			_ = c.Reset()
		}
		return c
	}}
}

// All exposes the sequence through the standard iteration contract.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := s.newCursor()
		defer c.Close()
		for c.Advance() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// derive builds a downstream sequence whose cursor pulls on demand
// from a freshly obtained upstream cursor. Restartability propagates:
// if the upstream hands out fresh cursors, so does the derived
// sequence.
func derive[T, R any](src *Sequence[T], build func(up Cursor[T]) func() (R, bool)) *Sequence[R] {
	return &Sequence[R]{newCursor: func() Cursor[R] {
		up := src.newCursor()
		return newStepCursor(build(up), up.Close)
	}}
}
