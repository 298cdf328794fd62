package seqs

// Terminal operators: each drives one traversal of the cursor chain to
// completion or to the point where its answer is decided.

// scanMatches drives one traversal, calling visit for every item that
// satisfies the optional predicate. visit returns false to stop early.
// A predicate that sets Cancel stops the scan after the current item's
// match has been delivered.
func (s *Sequence[T]) scanMatches(preds []Predicate[T], visit func(item T) bool) {
	c := s.newCursor()
	defer c.Close()
	if len(preds) == 0 || preds[0] == nil {
		for c.Advance() {
			if !visit(c.Current()) {
				return
			}
		}
		return
	}
	pred := preds[0]
	st := &stage[T]{}
	for c.Advance() {
		item := c.Current()
		ctx := st.enter(c)
		matched := pred(item, ctx)
		cancelled := st.leave(ctx)
		if matched && !visit(item) {
			return
		}
		if cancelled {
			return
		}
	}
}

// ToSlice materializes the sequence in iteration order.
func (s *Sequence[T]) ToSlice() []T {
	c := s.newCursor()
	defer c.Close()
	var out []T
	for c.Advance() {
		out = append(out, c.Current())
	}
	return out
}

// ToSliceBy materializes the sequence placing each item at the slot
// computed by the index selector instead of its iteration position,
// growing the result with zero values as needed. Callers must ensure
// the selector yields non-colliding, non-negative indices; a negative
// index fails with ErrIndexOutOfRange.
func (s *Sequence[T]) ToSliceBy(index KeySelector[T, int]) ([]T, error) {
	c := s.newCursor()
	defer c.Close()
	st := &stage[T]{}
	var out []T
	for c.Advance() {
		item := c.Current()
		ctx := st.enter(c)
		slot := index(item, ctx)
		cancelled := st.leave(ctx)
		if slot < 0 {
			return nil, ErrIndexOutOfRange
		}
		for len(out) <= slot {
			var zero T
			out = append(out, zero)
		}
		out[slot] = item
		if cancelled {
			break
		}
	}
	return out, nil
}

// Count returns the number of items, or with a predicate the number of
// matching items.
func (s *Sequence[T]) Count(preds ...Predicate[T]) int {
	n := 0
	s.scanMatches(preds, func(T) bool {
		n++
		return true
	})
	return n
}

// Any reports whether the sequence has any item, or with a predicate
// whether any item matches.
func (s *Sequence[T]) Any(preds ...Predicate[T]) bool {
	found := false
	s.scanMatches(preds, func(T) bool {
		found = true
		return false
	})
	return found
}

// AllMatch reports whether every item satisfies the predicate.
// Vacuously true on an empty sequence.
func (s *Sequence[T]) AllMatch(pred Predicate[T]) bool {
	c := s.newCursor()
	defer c.Close()
	st := &stage[T]{}
	for c.Advance() {
		ctx := st.enter(c)
		ok := pred(c.Current(), ctx)
		cancelled := st.leave(ctx)
		if !ok {
			return false
		}
		if cancelled {
			break
		}
	}
	return true
}

// Contains reports whether the sequence holds an item equal to v under
// the optional equality (default Loose).
func (s *Sequence[T]) Contains(v T, eq ...Equality[T]) bool {
	equal := equalityOf(eq)
	c := s.newCursor()
	defer c.Close()
	for c.Advance() {
		if equal(c.Current(), v) {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first item satisfying the
// predicate, or -1.
func (s *Sequence[T]) IndexOf(pred Predicate[T]) int {
	c := s.newCursor()
	defer c.Close()
	st := &stage[T]{}
	for c.Advance() {
		ctx := st.enter(c)
		matched := pred(c.Current(), ctx)
		cancelled := st.leave(ctx)
		if matched {
			return c.Pos()
		}
		if cancelled {
			break
		}
	}
	return -1
}

// Each performs the action on every item.
func (s *Sequence[T]) Each(action Action[T]) {
	c := s.newCursor()
	defer c.Close()
	st := &stage[T]{}
	for c.Advance() {
		ctx := st.enter(c)
		action(c.Current(), ctx)
		if st.leave(ctx) {
			return
		}
	}
}

// First returns the first item, or the first item satisfying the
// predicate. Fails with ErrEmptySequence when there is none.
func (s *Sequence[T]) First(preds ...Predicate[T]) (T, error) {
	var first T
	found := false
	s.scanMatches(preds, func(item T) bool {
		first = item
		found = true
		return false
	})
	if !found {
		var zero T
		return zero, ErrEmptySequence
	}
	return first, nil
}

// FirstOrDefault is First falling back to def instead of failing.
func (s *Sequence[T]) FirstOrDefault(def T, preds ...Predicate[T]) T {
	if v, err := s.First(preds...); err == nil {
		return v
	}
	return def
}

// Last returns the final item, or the final item satisfying the
// predicate. Fails with ErrEmptySequence when there is none.
func (s *Sequence[T]) Last(preds ...Predicate[T]) (T, error) {
	var last T
	found := false
	s.scanMatches(preds, func(item T) bool {
		last = item
		found = true
		return true
	})
	if !found {
		var zero T
		return zero, ErrEmptySequence
	}
	return last, nil
}

// LastOrDefault is Last falling back to def instead of failing.
func (s *Sequence[T]) LastOrDefault(def T, preds ...Predicate[T]) T {
	if v, err := s.Last(preds...); err == nil {
		return v
	}
	return def
}

// Single returns the only item (or only match). It fails with
// ErrEmptySequence when there is none and ErrMultipleMatches when
// there is more than one.
func (s *Sequence[T]) Single(preds ...Predicate[T]) (T, error) {
	var single T
	n := 0
	s.scanMatches(preds, func(item T) bool {
		n++
		single = item
		return n < 2
	})
	switch {
	case n == 0:
		var zero T
		return zero, ErrEmptySequence
	case n > 1:
		var zero T
		return zero, ErrMultipleMatches
	}
	return single, nil
}

// SingleOrDefault is Single falling back to def on an empty match set.
// Multiple matches still fail with ErrMultipleMatches.
func (s *Sequence[T]) SingleOrDefault(def T, preds ...Predicate[T]) (T, error) {
	v, err := s.Single(preds...)
	switch err {
	case nil:
		return v, nil
	case ErrEmptySequence:
		return def, nil
	default:
		return v, err
	}
}

// ElementAt returns the item at the zero-based position. Negative
// positions fail with ErrIndexOutOfRange; positions past the end fail
// with ErrEmptySequence.
func (s *Sequence[T]) ElementAt(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, ErrIndexOutOfRange
	}
	c := s.newCursor()
	defer c.Close()
	for n := 0; c.Advance(); n++ {
		if n == i {
			return c.Current(), nil
		}
	}
	return zero, ErrEmptySequence
}

// ElementAtOrDefault is ElementAt falling back to def for positions
// past the end. Negative positions still fail.
func (s *Sequence[T]) ElementAtOrDefault(i int, def T) (T, error) {
	v, err := s.ElementAt(i)
	switch err {
	case nil:
		return v, nil
	case ErrEmptySequence:
		return def, nil
	default:
		return def, err
	}
}

// Aggregate folds the sequence: the first item seeds the running
// result unconditionally, and from the second item on the accumulator
// is invoked as (running, item) -> running. Returns def when the
// sequence is empty. An accumulator that sets Cancel keeps the current
// item's fold and stops.
func (s *Sequence[T]) Aggregate(acc Accumulator[T], def T) T {
	c := s.newCursor()
	defer c.Close()
	if !c.Advance() {
		return def
	}
	running := c.Current()
	st := &stage[T]{}
	for c.Advance() {
		ctx := st.enter(c)
		running = acc(running, c.Current(), ctx)
		if st.leave(ctx) {
			break
		}
	}
	return running
}

// Fold folds the sequence into an explicitly seeded result of a
// different type, applying the step protocol to every item.
func Fold[T, R any](src *Sequence[T], seed R, f func(acc R, item T, ctx *Context[T]) R) R {
	c := src.Cursor()
	defer c.Close()
	st := &stage[T]{}
	acc := seed
	for c.Advance() {
		ctx := st.enter(c)
		acc = f(acc, c.Current(), ctx)
		if st.leave(ctx) {
			break
		}
	}
	return acc
}

// SequenceEqual walks both sequences in lockstep and reports whether
// they yield equal items for the same length. The comparison fails the
// moment the lengths diverge.
func (s *Sequence[T]) SequenceEqual(other *Sequence[T], eq ...Equality[T]) bool {
	equal := equalityOf(eq)
	a := s.newCursor()
	defer a.Close()
	b := other.newCursor()
	defer b.Close()
	for {
		okA := a.Advance()
		okB := b.Advance()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !equal(a.Current(), b.Current()) {
			return false
		}
	}
}
