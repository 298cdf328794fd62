package seqs

// Type-changing operators live at package level: Go methods cannot
// introduce new type parameters.

// Select projects every item through the selector.
func Select[T, R any](src *Sequence[T], sel Selector[T, R]) *Sequence[R] {
	return derive(src, func(up Cursor[T]) func() (R, bool) {
		st := &stage[T]{}
		stopped := false
		return func() (R, bool) {
			var zero R
			if stopped || !up.Advance() {
				return zero, false
			}
			ctx := st.enter(up)
			out := sel(up.Current(), ctx)
			if st.leave(ctx) {
				stopped = true
				return zero, false
			}
			return out, true
		}
	})
}

// SelectMany projects every item to a sub-sequence and flattens the
// results, pulling each sub-sequence on demand.
func SelectMany[T, R any](src *Sequence[T], sel Selector[T, *Sequence[R]]) *Sequence[R] {
	return &Sequence[R]{newCursor: func() Cursor[R] {
		up := src.newCursor()
		st := &stage[T]{}
		var inner Cursor[R]
		stopped := false
		next := func() (R, bool) {
			var zero R
			for {
				if stopped {
					return zero, false
				}
				if inner != nil {
					if inner.Advance() {
						return inner.Current(), true
					}
					inner.Close()
					inner = nil
				}
				if !up.Advance() {
					return zero, false
				}
				ctx := st.enter(up)
				sub := sel(up.Current(), ctx)
				if st.leave(ctx) {
					stopped = true
					return zero, false
				}
				if sub != nil {
					inner = sub.Cursor()
				}
			}
		}
		return newStepCursor(next, func() {
			if inner != nil {
				inner.Close()
			}
			up.Close()
		})
	}}
}

// Zip walks both sequences in lockstep, combining the paired items,
// and stops as soon as either sequence is exhausted.
func Zip[T, U, R any](a *Sequence[T], b *Sequence[U], combine func(T, U) R) *Sequence[R] {
	return &Sequence[R]{newCursor: func() Cursor[R] {
		ca := a.newCursor()
		cb := b.newCursor()
		next := func() (R, bool) {
			if !ca.Advance() || !cb.Advance() {
				var zero R
				return zero, false
			}
			return combine(ca.Current(), cb.Current()), true
		}
		return newStepCursor(next, func() {
			ca.Close()
			cb.Close()
		})
	}}
}

// OfType yields the items whose dynamic type is R, cast to R. Items of
// any other type are filtered out.
func OfType[R, T any](src *Sequence[T]) *Sequence[R] {
	return derive(src, func(up Cursor[T]) func() (R, bool) {
		return func() (R, bool) {
			for up.Advance() {
				if out, ok := any(up.Current()).(R); ok {
					return out, true
				}
			}
			var zero R
			return zero, false
		}
	})
}

// Chunk yields consecutive slices of the given size; the final chunk
// may be shorter. A size of zero or less yields nothing.
func Chunk[T any](src *Sequence[T], size int) *Sequence[[]T] {
	return derive(src, func(up Cursor[T]) func() ([]T, bool) {
		done := false
		return func() ([]T, bool) {
			if done || size <= 0 {
				return nil, false
			}
			batch := make([]T, 0, size)
			for len(batch) < size && up.Advance() {
				batch = append(batch, up.Current())
			}
			if len(batch) < size {
				done = true
			}
			if len(batch) == 0 {
				return nil, false
			}
			return batch, true
		}
	})
}

// Scan is like Fold but yields the accumulated result at each step.
func Scan[T, R any](src *Sequence[T], initial R, reducer func(R, T) R) *Sequence[R] {
	return derive(src, func(up Cursor[T]) func() (R, bool) {
		acc := initial
		return func() (R, bool) {
			if !up.Advance() {
				var zero R
				return zero, false
			}
			acc = reducer(acc, up.Current())
			return acc, true
		}
	})
}
