/*
Package seqs is a lazy, composable sequence-processing engine: it wraps
any iterable source behind a uniform [Cursor] abstraction and layers a
query vocabulary (filter, project, join, group, sort, set algebra,
aggregation) on top, evaluated on demand rather than eagerly.

# Sources

A [Sequence] is built from a slice ([FromSlice], [Of]), a restartable
iterable ([FromSeq]), a one-shot stepper ([FromNext]) or an existing
cursor ([FromCursor]). Slice- and iterable-backed sequences hand out a
fresh cursor per traversal and can be iterated repeatedly; a one-shot
sequence yields nothing on a second traversal.

# Laziness

Every transformation returns a new Sequence whose cursor pulls from the
upstream cursor on demand; no work happens until a terminal call
(ToSlice, Count, First, or ranging over All) drives the chain. Only
algorithms that inherently need to look at previously seen or all items
buffer: Distinct, Except, Intersect, Union, Reverse, SkipLast, the
orderings and the groupings.

# The step protocol

Stage callbacks receive the item and a [Context] carrying the step
index, two carry channels (a consecutive NextValue/PreviousValue
handoff and a sticky Value) and a cooperative Cancel flag:

	evens := seqs.Of(1, 2, 3, 4, 5).Where(func(v int, _ *seqs.Context[int]) bool {
		return v%2 == 0
	})
	squares := seqs.Select(evens, func(v int, _ *seqs.Context[int]) int {
		return v * v
	})
	fmt.Println(squares.ToSlice()) // [4 16]

# Errors

Lazy operators never fail at construction. Terminal calls return
sentinel errors (ErrEmptySequence, ErrMultipleMatches,
ErrIndexOutOfRange); the OrDefault variants and DefaultIfEmpty are the
non-erroring alternatives.
*/
package seqs
