package seqs

// Where yields only the items that satisfy the predicate.
//
// The predicate runs under the step protocol: its Context index counts
// the upstream items it has examined. If the predicate sets Cancel,
// the traversal stops and the cancelling item is not yielded.
func (s *Sequence[T]) Where(pred Predicate[T]) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		st := &stage[T]{}
		stopped := false
		return func() (T, bool) {
			var zero T
			if stopped {
				return zero, false
			}
			for up.Advance() {
				item := up.Current()
				ctx := st.enter(up)
				keep := pred(item, ctx)
				if st.leave(ctx) {
					stopped = true
					return zero, false
				}
				if keep {
					return item, true
				}
			}
			return zero, false
		}
	})
}

// Peek performs the action on each item as it flows through, without
// modifying the stream. Useful for side effects; the action may cancel
// the traversal, in which case the cancelling item is not yielded.
func (s *Sequence[T]) Peek(action Action[T]) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		st := &stage[T]{}
		stopped := false
		return func() (T, bool) {
			var zero T
			if stopped || !up.Advance() {
				return zero, false
			}
			item := up.Current()
			ctx := st.enter(up)
			action(item, ctx)
			if st.leave(ctx) {
				stopped = true
				return zero, false
			}
			return item, true
		}
	})
}

// Concat yields this sequence's items followed by the items of every
// other sequence, in order.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	sources := append([]*Sequence[T]{s}, others...)
	return &Sequence[T]{newCursor: func() Cursor[T] {
		var cur Cursor[T]
		i := 0
		next := func() (T, bool) {
			for {
				if cur == nil {
					if i >= len(sources) {
						var zero T
						return zero, false
					}
					cur = sources[i].newCursor()
					i++
				}
				if cur.Advance() {
					return cur.Current(), true
				}
				cur.Close()
				cur = nil
			}
		}
		return newStepCursor(next, func() {
			if cur != nil {
				cur.Close()
			}
		})
	}}
}

// DefaultIfEmpty yields the sequence unchanged, or the single given
// default when the sequence turns out to be empty.
func (s *Sequence[T]) DefaultIfEmpty(def T) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		started := false
		substituted := false
		return func() (T, bool) {
			if up.Advance() {
				started = true
				return up.Current(), true
			}
			if !started && !substituted {
				substituted = true
				return def, true
			}
			var zero T
			return zero, false
		}
	})
}

// Reverse yields the items in the opposite order. The whole upstream
// is buffered on the first pull.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		var buf []T
		pos := -1
		return func() (T, bool) {
			if pos < 0 {
				for up.Advance() {
					buf = append(buf, up.Current())
				}
				pos = len(buf)
			}
			if pos == 0 {
				var zero T
				return zero, false
			}
			pos--
			return buf[pos], true
		}
	})
}
