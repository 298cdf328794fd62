package seqs

import "iter"

// Grouping is a key paired with the sub-sequence of items sharing that
// key. It exposes the full sequence surface over its items.
type Grouping[K, T any] struct {
	*Sequence[T]
	key K
}

// Key returns the group's key.
func (g *Grouping[K, T]) Key() K { return g.key }

// buildGroups partitions one traversal of src into groups in a single
// pass: each item is matched against the existing groups by a linear
// key-equality scan, joining the first match or opening a new group.
// Groups come out in first-seen order with items in source order.
func buildGroups[T, K any](src *Sequence[T], key KeySelector[T, K], equal Equality[K]) []*Grouping[K, T] {
	c := src.Cursor()
	defer c.Close()
	st := &stage[T]{}

	type bucket struct {
		key   K
		items []T
	}
	var buckets []*bucket
	for c.Advance() {
		item := c.Current()
		ctx := st.enter(c)
		k := key(item, ctx)
		cancelled := st.leave(ctx)

		var target *bucket
		for _, b := range buckets {
			if equal(b.key, k) {
				target = b
				break
			}
		}
		if target == nil {
			target = &bucket{key: k}
			buckets = append(buckets, target)
		}
		target.items = append(target.items, item)

		if cancelled {
			break
		}
	}

	groups := make([]*Grouping[K, T], len(buckets))
	for i, b := range buckets {
		groups[i] = &Grouping[K, T]{Sequence: FromSlice(b.items), key: b.key}
	}
	return groups
}

// GroupBy partitions the sequence by key. The partitioning happens
// eagerly on the first pull; the resulting groups are then exposed
// lazily. The optional key equality defaults to Loose.
func GroupBy[T, K any](src *Sequence[T], key KeySelector[T, K], eq ...Equality[K]) *Sequence[*Grouping[K, T]] {
	equal := equalityOf(eq)
	return &Sequence[*Grouping[K, T]]{newCursor: func() Cursor[*Grouping[K, T]] {
		return newSliceCursor(buildGroups(src, key, equal))
	}}
}

// Lookup is an eagerly built keyed partition supporting lookups by key.
type Lookup[K, T any] struct {
	groups []*Grouping[K, T]
	equal  Equality[K]
}

// ToLookup materializes the sequence into a Lookup immediately.
func ToLookup[T, K any](src *Sequence[T], key KeySelector[T, K], eq ...Equality[K]) *Lookup[K, T] {
	equal := equalityOf(eq)
	return &Lookup[K, T]{groups: buildGroups(src, key, equal), equal: equal}
}

// Get returns the sequence of items grouped under key, or an empty
// sequence when the key is absent.
func (l *Lookup[K, T]) Get(key K) *Sequence[T] {
	for _, g := range l.groups {
		if l.equal(g.key, key) {
			return g.Sequence
		}
	}
	return Empty[T]()
}

// Contains reports whether any group carries the key.
func (l *Lookup[K, T]) Contains(key K) bool {
	for _, g := range l.groups {
		if l.equal(g.key, key) {
			return true
		}
	}
	return false
}

// Count returns the number of groups.
func (l *Lookup[K, T]) Count() int { return len(l.groups) }

// All yields the groups in first-seen order.
func (l *Lookup[K, T]) All() iter.Seq[*Grouping[K, T]] {
	return func(yield func(*Grouping[K, T]) bool) {
		for _, g := range l.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Seq exposes the groups as a sequence.
func (l *Lookup[K, T]) Seq() *Sequence[*Grouping[K, T]] {
	return FromSlice(l.groups)
}
