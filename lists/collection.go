package lists

import (
	"fmt"
	"iter"

	"ripple/seqs"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	ErrReadOnly         = fmt.Errorf("collection is read-only")
)

// Collection is a mutable array-backed container that also exposes the
// lazy sequence surface. Every successful mutation sets a "changed"
// flag for consumers that need to detect modification between
// traversals. A read-only view rejects every mutating call with
// ErrReadOnly instead of silently doing nothing.
//
// Collections assume a single logical thread drives both mutation and
// iteration; mutating the backing array while iterating has undefined
// ordering effects.
type Collection[T any] struct {
	items    []T
	equal    seqs.Equality[T]
	changed  bool
	readOnly bool
}

// NewCollection builds a collection over the given values using the
// default loose equality.
func NewCollection[T any](values ...T) *Collection[T] {
	return NewCollectionWith(nil, values...)
}

// NewCollectionWith builds a collection with an explicit equality used
// by Contains, IndexOf, Remove and the set-flavored helpers. A nil
// equality falls back to loose comparison.
func NewCollectionWith[T any](equal seqs.Equality[T], values ...T) *Collection[T] {
	if equal == nil {
		equal = seqs.Loose[T]()
	}
	items := make([]T, len(values))
	copy(items, values)
	return &Collection[T]{items: items, equal: equal}
}

// ReadOnly returns a read-only view over this collection's current
// backing array. In-place mutations through the original stay visible;
// growth may detach the view's snapshot.
func (c *Collection[T]) ReadOnly() *Collection[T] {
	return &Collection[T]{items: c.items, equal: c.equal, readOnly: true}
}

// IsReadOnly reports whether mutating calls are rejected.
func (c *Collection[T]) IsReadOnly() bool { return c.readOnly }

// Changed reports whether the collection has been mutated since
// construction or the last ResetChanged.
func (c *Collection[T]) Changed() bool { return c.changed }

// ResetChanged clears the changed flag.
func (c *Collection[T]) ResetChanged() { c.changed = false }

func (c *Collection[T]) mutable() error {
	if c.readOnly {
		return ErrReadOnly
	}
	return nil
}

// Add appends one or more values.
func (c *Collection[T]) Add(values ...T) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.items = append(c.items, values...)
	c.changed = true
	return nil
}

// AddRange appends every item of the sequence.
func (c *Collection[T]) AddRange(src *seqs.Sequence[T]) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.items = append(c.items, src.ToSlice()...)
	c.changed = true
	return nil
}

// Insert places value at index, shifting later items right.
func (c *Collection[T]) Insert(index int, value T) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if index < 0 || index > len(c.items) {
		return ErrIndexOutOfBounds
	}
	var zero T
	c.items = append(c.items, zero)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = value
	c.changed = true
	return nil
}

// RemoveAt removes and returns the item at index.
func (c *Collection[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := c.mutable(); err != nil {
		return zero, err
	}
	if index < 0 || index >= len(c.items) {
		return zero, ErrIndexOutOfBounds
	}
	removed := c.items[index]
	copy(c.items[index:], c.items[index+1:])
	// clear the vacated tail slot so it can be collected
	clear(c.items[len(c.items)-1:])
	c.items = c.items[:len(c.items)-1]
	c.changed = true
	return removed, nil
}

// Remove deletes the first item equal to value and reports whether one
// was found.
func (c *Collection[T]) Remove(value T) (bool, error) {
	if err := c.mutable(); err != nil {
		return false, err
	}
	i := c.IndexOf(value)
	if i < 0 {
		return false, nil
	}
	if _, err := c.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAll deletes every item satisfying the predicate and returns
// how many were removed.
func (c *Collection[T]) RemoveAll(pred func(T) bool) (int, error) {
	if err := c.mutable(); err != nil {
		return 0, err
	}
	kept := c.items[:0]
	removed := 0
	for _, v := range c.items {
		if pred(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	// zero the tail so removed items can be collected
	clear(c.items[len(kept):])
	c.items = kept
	if removed > 0 {
		c.changed = true
	}
	return removed, nil
}

// Clear removes every item.
func (c *Collection[T]) Clear() error {
	if err := c.mutable(); err != nil {
		return err
	}
	clear(c.items)
	c.items = c.items[:0]
	c.changed = true
	return nil
}

// Get returns the item at index.
func (c *Collection[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return c.items[index], nil
}

// Set replaces the item at index.
func (c *Collection[T]) Set(index int, value T) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfBounds
	}
	c.items[index] = value
	c.changed = true
	return nil
}

// IndexOf returns the position of the first item equal to value, or -1.
func (c *Collection[T]) IndexOf(value T) int {
	for i, v := range c.items {
		if c.equal(v, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether the collection holds an item equal to value.
func (c *Collection[T]) Contains(value T) bool { return c.IndexOf(value) >= 0 }

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// IsEmpty reports whether the collection holds no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// ToSlice returns a copy of the backing array.
func (c *Collection[T]) ToSlice() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// All yields the items in order, reading the backing array live.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq exposes the collection through the lazy query surface. The
// sequence reads the live backing array, so each traversal sees the
// collection's state when it starts.
func (c *Collection[T]) Seq() *seqs.Sequence[T] {
	return seqs.FromSeq(c.All())
}
