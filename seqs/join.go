package seqs

// Join correlates the two sequences on equal keys. Both sides are
// partitioned with buildGroups on the first pull, then every outer
// group is paired with every inner group whose key compares equal (a
// linear key scan, not a hash join) and the matching items are
// cross-produced. Outer groups come in first-seen order, inner matches
// in first-seen order, items within a group in source order. Outer
// items without a matching inner group produce nothing.
func Join[T, U, K, R any](
	outer *Sequence[T],
	inner *Sequence[U],
	outerKey KeySelector[T, K],
	innerKey KeySelector[U, K],
	result func(outer T, inner U) R,
	eq ...Equality[K],
) *Sequence[R] {
	equal := equalityOf(eq)
	return &Sequence[R]{newCursor: func() Cursor[R] {
		og := buildGroups(outer, outerKey, equal)
		ig := buildGroups(inner, innerKey, equal)
		var out []R
		for _, o := range og {
			for _, i := range ig {
				if !equal(o.key, i.key) {
					continue
				}
				for _, ov := range o.ToSlice() {
					for _, iv := range i.ToSlice() {
						out = append(out, result(ov, iv))
					}
				}
			}
		}
		return newSliceCursor(out)
	}}
}

// GroupJoin correlates every outer item with the whole sub-sequence of
// inner items sharing its key. Outer items with no match receive an
// empty sequence.
func GroupJoin[T, U, K, R any](
	outer *Sequence[T],
	inner *Sequence[U],
	outerKey KeySelector[T, K],
	innerKey KeySelector[U, K],
	result func(outer T, matches *Sequence[U]) R,
	eq ...Equality[K],
) *Sequence[R] {
	equal := equalityOf(eq)
	return &Sequence[R]{newCursor: func() Cursor[R] {
		og := buildGroups(outer, outerKey, equal)
		ig := buildGroups(inner, innerKey, equal)
		var out []R
		for _, o := range og {
			matches := Empty[U]()
			for _, i := range ig {
				if equal(o.key, i.key) {
					matches = i.Sequence
					break
				}
			}
			for _, ov := range o.ToSlice() {
				out = append(out, result(ov, matches))
			}
		}
		return newSliceCursor(out)
	}}
}
