package seqs

// The set operators buffer every accepted item and test candidates by
// a linear scan with the configured equality. The equality may be
// arbitrary (it need not map to a hashable key), so no map-based
// shortcut applies; complexity is O(n*m).

func containsWith[T any](items []T, v T, eq Equality[T]) bool {
	for _, it := range items {
		if eq(it, v) {
			return true
		}
	}
	return false
}

// Distinct yields each distinct item once, in first-seen order. The
// optional equality defaults to Loose.
func (s *Sequence[T]) Distinct(eq ...Equality[T]) *Sequence[T] {
	equal := equalityOf(eq)
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		var seen []T
		return func() (T, bool) {
			for up.Advance() {
				item := up.Current()
				if containsWith(seen, item, equal) {
					continue
				}
				seen = append(seen, item)
				return item, true
			}
			var zero T
			return zero, false
		}
	})
}

// Except yields the distinct items of this sequence that do not occur
// in other. The other sequence is materialized (distinct) up front on
// the first pull.
func (s *Sequence[T]) Except(other *Sequence[T], eq ...Equality[T]) *Sequence[T] {
	equal := equalityOf(eq)
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		var excluded []T
		ready := false
		return func() (T, bool) {
			if !ready {
				excluded = other.Distinct(equal).ToSlice()
				ready = true
			}
			for up.Advance() {
				item := up.Current()
				if containsWith(excluded, item, equal) {
					continue
				}
				// accepted items join the excluded buffer so the
				// result stays distinct
				excluded = append(excluded, item)
				return item, true
			}
			var zero T
			return zero, false
		}
	})
}

// Intersect yields the distinct items of this sequence that also occur
// in other, in this sequence's order.
func (s *Sequence[T]) Intersect(other *Sequence[T], eq ...Equality[T]) *Sequence[T] {
	equal := equalityOf(eq)
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		var candidates []T
		ready := false
		return func() (T, bool) {
			if !ready {
				candidates = other.Distinct(equal).ToSlice()
				ready = true
			}
			for up.Advance() {
				item := up.Current()
				matched := -1
				for i, c := range candidates {
					if equal(c, item) {
						matched = i
						break
					}
				}
				if matched < 0 {
					continue
				}
				// remove the matched candidate so duplicates in this
				// sequence are not re-emitted
				candidates = append(candidates[:matched], candidates[matched+1:]...)
				return item, true
			}
			var zero T
			return zero, false
		}
	})
}

// Union yields the distinct items of this sequence followed by the
// distinct items of other that were not already yielded.
func (s *Sequence[T]) Union(other *Sequence[T], eq ...Equality[T]) *Sequence[T] {
	return s.Concat(other).Distinct(eq...)
}
