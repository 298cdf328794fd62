package seqs

// Skip drops the first n items and yields the rest.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		skipped := 0
		return func() (T, bool) {
			for skipped < n && up.Advance() {
				skipped++
			}
			if !up.Advance() {
				var zero T
				return zero, false
			}
			return up.Current(), true
		}
	})
}

// Take yields at most the first n items.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		taken := 0
		return func() (T, bool) {
			var zero T
			if taken >= n || !up.Advance() {
				return zero, false
			}
			taken++
			return up.Current(), true
		}
	})
}

// TakeWhile yields items as long as the predicate holds, then stops.
func (s *Sequence[T]) TakeWhile(pred Predicate[T]) *Sequence[T] {
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
			keep := pred(item, ctx)
			if st.leave(ctx) || !keep {
				stopped = true
				return zero, false
			}
			return item, true
		}
	})
}

// SkipWhile drops items as long as the predicate holds, then yields
// the rest unconditionally.
func (s *Sequence[T]) SkipWhile(pred Predicate[T]) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		st := &stage[T]{}
		dropping := true
		stopped := false
		return func() (T, bool) {
			var zero T
			if stopped {
				return zero, false
			}
			for up.Advance() {
				item := up.Current()
				if !dropping {
					return item, true
				}
				ctx := st.enter(up)
				drop := pred(item, ctx)
				if st.leave(ctx) {
					stopped = true
					return zero, false
				}
				if !drop {
					dropping = false
					return item, true
				}
			}
			return zero, false
		}
	})
}

// SkipLast yields everything except the final n items, holding back
// the n most recently pulled items in a lookahead ring: each pull
// hands out the oldest held item once a newer one has arrived, and the
// held items are dropped when the upstream exhausts.
func (s *Sequence[T]) SkipLast(n int) *Sequence[T] {
	if n <= 0 {
		return derive(s, func(up Cursor[T]) func() (T, bool) {
			return func() (T, bool) {
				if !up.Advance() {
					var zero T
					return zero, false
				}
				return up.Current(), true
			}
		})
	}
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		held := make([]T, 0, n)
		head := 0
		return func() (T, bool) {
			for up.Advance() {
				if len(held) < n {
					held = append(held, up.Current())
					continue
				}
				out := held[head]
				held[head] = up.Current()
				head = (head + 1) % n
				return out, true
			}
			var zero T
			return zero, false
		}
	})
}
