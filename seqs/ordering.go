package seqs

import (
	"cmp"
	"slices"
)

// sortStage is one key of a multi-key sort: an eager key-extraction
// pass over the unsorted items plus the comparison for that key.
type sortStage[T any] struct {
	keysFor func(items []T) []any
	compare func(a, b any) int
}

// OrderedSequence is a sequence with a defined multi-key sort order.
// It retains the original unsorted source so that ThenBy variants can
// re-sort it with a composite comparer: the primary key decides first
// and only a tie falls through to the next key. Sorting is stable, and
// descending keys swap comparer operands rather than reversing the
// result, so ties keep their source order across the whole chain.
//
// The sorted array is materialized on the first pull, not when the
// ordering is constructed.
type OrderedSequence[T any] struct {
	*Sequence[T]
	source *Sequence[T]
	stages []sortStage[T]
	sorted []T
	done   bool
}

func newOrdered[T any](source *Sequence[T], stages []sortStage[T]) *OrderedSequence[T] {
	o := &OrderedSequence[T]{source: source, stages: stages}
	o.Sequence = &Sequence[T]{newCursor: func() Cursor[T] {
		return newSliceCursor(o.materialize())
	}}
	return o
}

func (o *OrderedSequence[T]) materialize() []T {
	if o.done {
		return o.sorted
	}
	items := o.source.ToSlice()

	// one eager key pass per stage, each under its own step protocol
	keys := make([][]any, len(o.stages))
	for i, st := range o.stages {
		keys[i] = st.keysFor(items)
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		for i, st := range o.stages {
			if c := st.compare(keys[i][a], keys[i][b]); c != 0 {
				return c
			}
		}
		return 0
	})

	out := make([]T, len(items))
	for i, j := range order {
		out[i] = items[j]
	}
	o.sorted = out
	o.done = true
	return out
}

func keyStage[T, K any](key KeySelector[T, K], comparer Comparer[K], descending bool) sortStage[T] {
	return sortStage[T]{
		keysFor: func(items []T) []any {
			cur := newSliceCursor(items)
			st := &stage[T]{}
			keys := make([]any, 0, len(items))
			for cur.Advance() {
				ctx := st.enter(cur)
				keys = append(keys, any(key(cur.Current(), ctx)))
				if st.leave(ctx) {
					break
				}
			}
			// a cancelled key pass leaves the remaining items with
			// zero keys
			for len(keys) < len(items) {
				var zero K
				keys = append(keys, any(zero))
			}
			return keys
		},
		compare: func(a, b any) int {
			if descending {
				return comparer(b.(K), a.(K))
			}
			return comparer(a.(K), b.(K))
		},
	}
}

// OrderBy sorts the sequence ascending by the naturally ordered key.
func OrderBy[T any, K cmp.Ordered](src *Sequence[T], key KeySelector[T, K]) *OrderedSequence[T] {
	return OrderByComparer(src, key, Natural[K]())
}

// OrderByDescending sorts the sequence descending by the naturally
// ordered key.
func OrderByDescending[T any, K cmp.Ordered](src *Sequence[T], key KeySelector[T, K]) *OrderedSequence[T] {
	return OrderByComparerDescending(src, key, Natural[K]())
}

// OrderByComparer sorts ascending using an explicit key comparer.
func OrderByComparer[T, K any](src *Sequence[T], key KeySelector[T, K], comparer Comparer[K]) *OrderedSequence[T] {
	return newOrdered(src, []sortStage[T]{keyStage(key, comparer, false)})
}

// OrderByComparerDescending sorts descending using an explicit key
// comparer.
func OrderByComparerDescending[T, K any](src *Sequence[T], key KeySelector[T, K], comparer Comparer[K]) *OrderedSequence[T] {
	return newOrdered(src, []sortStage[T]{keyStage(key, comparer, true)})
}

// ThenBy chains an ascending secondary key, consulted only when every
// earlier key ties.
func ThenBy[T any, K cmp.Ordered](o *OrderedSequence[T], key KeySelector[T, K]) *OrderedSequence[T] {
	return ThenByComparer(o, key, Natural[K]())
}

// ThenByDescending chains a descending secondary key.
func ThenByDescending[T any, K cmp.Ordered](o *OrderedSequence[T], key KeySelector[T, K]) *OrderedSequence[T] {
	return ThenByComparerDescending(o, key, Natural[K]())
}

// ThenByComparer chains an ascending secondary key with an explicit
// comparer.
func ThenByComparer[T, K any](o *OrderedSequence[T], key KeySelector[T, K], comparer Comparer[K]) *OrderedSequence[T] {
	stages := append(slices.Clone(o.stages), keyStage(key, comparer, false))
	return newOrdered(o.source, stages)
}

// ThenByComparerDescending chains a descending secondary key with an
// explicit comparer.
func ThenByComparerDescending[T, K any](o *OrderedSequence[T], key KeySelector[T, K], comparer Comparer[K]) *OrderedSequence[T] {
	stages := append(slices.Clone(o.stages), keyStage(key, comparer, true))
	return newOrdered(o.source, stages)
}
