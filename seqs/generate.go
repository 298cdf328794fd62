package seqs

// Range yields the integers from start towards end (exclusive) in
// increments of step. A step of zero yields nothing.
func Range(start, end, step int) *Sequence[int] {
	return FromSeq(func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) *Sequence[T] {
	return FromSeq(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}
