package seqs

// Context is the per-item execution context handed to every pipeline
// stage callback. A fresh Context is created for each step of a stage
// and discarded when the callback returns; the stage threads the two
// carry channels between invocations:
//
//   - NextValue/PreviousValue: whatever one invocation writes into
//     NextValue arrives as the next invocation's PreviousValue
//     (consecutive handoff, undefined on the first step).
//   - Value: once any invocation writes it, every later invocation in
//     the same traversal sees it, even if never rewritten (sticky).
//
// Setting Cancel stops the stage's driving loop after the callback
// returns: no further items are pulled from upstream. Lazy stages do
// not yield the item whose callback cancelled; fold-style terminals
// (Count, Aggregate, Fold) keep the current item's contribution.
type Context[T any] struct {
	cursor Cursor[T]

	// Index is the zero-based step number within this stage.
	Index int

	// First reports whether this is the stage's first step.
	First bool

	// Cancel, when set by the callback, stops the traversal.
	Cancel bool

	// Value is the sticky carry, visible to all remaining steps.
	Value any

	// NextValue is handed to the next step as PreviousValue.
	NextValue any

	// PreviousValue is what the previous step wrote into NextValue.
	PreviousValue any
}

// Item returns the element the owning cursor is positioned on.
func (c *Context[T]) Item() T { return c.cursor.Current() }

// Cursor returns the cursor driving this stage. The context does not
// own it; callers must not advance or close it.
func (c *Context[T]) Cursor() Cursor[T] { return c.cursor }

// stage holds the per-traversal state of one pipeline stage and
// threads the carry channels from one callback invocation to the next.
type stage[T any] struct {
	index int
	carry any
	prev  any
}

func (s *stage[T]) enter(cur Cursor[T]) *Context[T] {
	return &Context[T]{
		cursor:        cur,
		Index:         s.index,
		First:         s.index == 0,
		Value:         s.carry,
		PreviousValue: s.prev,
	}
}

// leave records the carry channels and reports whether the callback
// cancelled the traversal.
func (s *stage[T]) leave(ctx *Context[T]) bool {
	s.prev = ctx.NextValue
	s.carry = ctx.Value
	s.index++
	return ctx.Cancel
}

// Predicate decides whether an item passes a filtering stage.
type Predicate[T any] func(item T, ctx *Context[T]) bool

// Action is a side-effecting stage callback.
type Action[T any] func(item T, ctx *Context[T])

// Selector projects an item to a result.
type Selector[T, R any] func(item T, ctx *Context[T]) R

// KeySelector extracts a key from an item.
type KeySelector[T, K any] func(item T, ctx *Context[T]) K

// Accumulator folds the running result with the next item.
type Accumulator[T any] func(acc T, item T, ctx *Context[T]) T
