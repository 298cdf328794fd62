// Package sets provides a mutable set enforcing uniqueness through the
// configured equality, defined on top of the seqs query surface.
package sets

import (
	"iter"

	"ripple/seqs"
)

// HashSet is an array-backed set. Uniqueness is enforced on
// construction and on every Add by a linear scan against the
// configured equality, so the equality may be arbitrary and need not
// map to a hashable key.
type HashSet[T any] struct {
	items   []T
	equal   seqs.Equality[T]
	changed bool
}

// New builds a set from the given values, dropping duplicates under
// the default loose equality.
func New[T any](values ...T) *HashSet[T] {
	return NewWith(nil, values...)
}

// NewWith builds a set with an explicit equality. A nil equality falls
// back to loose comparison.
func NewWith[T any](equal seqs.Equality[T], values ...T) *HashSet[T] {
	if equal == nil {
		equal = seqs.Loose[T]()
	}
	s := &HashSet[T]{equal: equal}
	s.items = seqs.Of(values...).Distinct(equal).ToSlice()
	return s
}

// Add inserts value unless an equal item is already present, reporting
// whether the set grew.
func (s *HashSet[T]) Add(value T) bool {
	if s.Contains(value) {
		return false
	}
	s.items = append(s.items, value)
	s.changed = true
	return true
}

// Remove deletes the item equal to value, reporting whether one was
// found.
func (s *HashSet[T]) Remove(value T) bool {
	for i, v := range s.items {
		if s.equal(v, value) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.changed = true
			return true
		}
	}
	return false
}

// Contains reports whether the set holds an item equal to value.
func (s *HashSet[T]) Contains(value T) bool {
	for _, v := range s.items {
		if s.equal(v, value) {
			return true
		}
	}
	return false
}

// Len returns the number of items.
func (s *HashSet[T]) Len() int { return len(s.items) }

// Changed reports whether the set has been mutated since construction
// or the last ResetChanged.
func (s *HashSet[T]) Changed() bool { return s.changed }

// ResetChanged clears the changed flag.
func (s *HashSet[T]) ResetChanged() { s.changed = false }

// Clear removes every item.
func (s *HashSet[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.changed = true
}

// ToSlice returns a copy of the items in insertion order.
func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All yields the items in insertion order.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq exposes the set through the lazy query surface.
func (s *HashSet[T]) Seq() *seqs.Sequence[T] {
	return seqs.FromSeq(s.All())
}

// IsSubsetOf reports whether every item of the set occurs in other.
func (s *HashSet[T]) IsSubsetOf(other *seqs.Sequence[T]) bool {
	for _, v := range s.items {
		if !other.Contains(v, s.equal) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether the set holds every item of other.
func (s *HashSet[T]) IsSupersetOf(other *seqs.Sequence[T]) bool {
	return other.AllMatch(func(v T, _ *seqs.Context[T]) bool {
		return s.Contains(v)
	})
}

// Overlaps reports whether the set and other share at least one item.
func (s *HashSet[T]) Overlaps(other *seqs.Sequence[T]) bool {
	return other.Any(func(v T, _ *seqs.Context[T]) bool {
		return s.Contains(v)
	})
}

// SetEquals reports whether the set and the distinct items of other
// hold exactly the same elements, in any order.
func (s *HashSet[T]) SetEquals(other *seqs.Sequence[T]) bool {
	distinct := other.Distinct(s.equal).ToSlice()
	if len(distinct) != len(s.items) {
		return false
	}
	return s.IsSubsetOf(seqs.FromSlice(distinct))
}

// UnionWith adds every item of other not already present.
func (s *HashSet[T]) UnionWith(other *seqs.Sequence[T]) {
	other.Each(func(v T, _ *seqs.Context[T]) {
		s.Add(v)
	})
}

// IntersectWith keeps only the items that also occur in other.
func (s *HashSet[T]) IntersectWith(other *seqs.Sequence[T]) {
	kept := s.Seq().Intersect(other, s.equal).ToSlice()
	if len(kept) != len(s.items) {
		s.changed = true
	}
	s.items = kept
}

// ExceptWith removes every item that occurs in other.
func (s *HashSet[T]) ExceptWith(other *seqs.Sequence[T]) {
	kept := s.Seq().Except(other, s.equal).ToSlice()
	if len(kept) != len(s.items) {
		s.changed = true
	}
	s.items = kept
}

// SymmetricExceptWith keeps the items present in exactly one of the
// set and other.
func (s *HashSet[T]) SymmetricExceptWith(other *seqs.Sequence[T]) {
	mine := seqs.FromSlice(s.ToSlice())
	onlyMine := mine.Except(other, s.equal)
	onlyOther := other.Distinct(s.equal).Except(mine, s.equal)
	s.items = onlyMine.Concat(onlyOther).ToSlice()
	s.changed = true
}
