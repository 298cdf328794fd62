package seqs

import "iter"

// Cursor is a step-wise position holder over a source: an external
// iterator with explicit advance/current/reset.
//
// Pos starts at -1 ("before first") and moves forward by one on every
// successful Advance. Current is meaningful only after Advance has
// returned true and before exhaustion; advancing past the end is a
// no-op that keeps returning false.
type Cursor[T any] interface {
	// Advance moves to the next element, caching it for Current.
	// It returns false once the source is exhausted.
	Advance() bool

	// Current returns the element cached by the last successful Advance.
	Current() T

	// Pos returns the zero-based position of the current element,
	// or -1 before the first Advance.
	Pos() int

	// Valid reports whether the cursor has not yet reached exhaustion.
	Valid() bool

	// CanReset reports whether Reset is supported.
	CanReset() bool

	// Reset rewinds the cursor to before the first element.
	// Cursors over one-shot sources return ErrUnsupportedOperation.
	Reset() error

	// Close releases any resources held by the cursor (pull goroutines,
	// upstream cursors). Closing twice is harmless.
	Close()
}

// sliceCursor drives a materialized slice by index. Resettable.
type sliceCursor[T any] struct {
	items []T
	pos   int
}

func newSliceCursor[T any](items []T) *sliceCursor[T] {
	return &sliceCursor[T]{items: items, pos: -1}
}

func (c *sliceCursor[T]) Advance() bool {
	if c.pos+1 >= len(c.items) {
		c.pos = len(c.items)
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor[T]) Current() T {
	if c.pos < 0 || c.pos >= len(c.items) {
		var zero T
		return zero
	}
	return c.items[c.pos]
}

func (c *sliceCursor[T]) Pos() int       { return c.pos }
func (c *sliceCursor[T]) Valid() bool    { return c.pos < len(c.items) }
func (c *sliceCursor[T]) CanReset() bool { return true }

func (c *sliceCursor[T]) Reset() error {
	c.pos = -1
	return nil
}

func (c *sliceCursor[T]) Close() {}

// seqCursor drives an iter.Seq through iter.Pull, re-deriving a fresh
// stepper on Reset. Resettable because the underlying iterable can be
// ranged over again.
type seqCursor[T any] struct {
	src  iter.Seq[T]
	next func() (T, bool)
	stop func()
	cur  T
	pos  int
	done bool
}

func newSeqCursor[T any](src iter.Seq[T]) *seqCursor[T] {
	c := &seqCursor[T]{src: src, pos: -1}
	c.next, c.stop = iter.Pull(src)
	return c
}

func (c *seqCursor[T]) Advance() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
		var zero T
		c.cur = zero
		return false
	}
	c.cur = v
	c.pos++
	return true
}

func (c *seqCursor[T]) Current() T     { return c.cur }
func (c *seqCursor[T]) Pos() int       { return c.pos }
func (c *seqCursor[T]) Valid() bool    { return !c.done }
func (c *seqCursor[T]) CanReset() bool { return true }

func (c *seqCursor[T]) Reset() error {
	c.stop()
	c.next, c.stop = iter.Pull(c.src)
	c.pos = -1
	c.done = false
	var zero T
	c.cur = zero
	return nil
}

func (c *seqCursor[T]) Close() { c.stop() }

// stepCursor drives an arbitrary step function. Not resettable: the
// stepper is a one-shot source. Every lazy operator builds its cursor
// this way, with close propagating to the upstream cursor.
type stepCursor[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	pos  int
	done bool
}

func newStepCursor[T any](next func() (T, bool), stop func()) *stepCursor[T] {
	return &stepCursor[T]{next: next, stop: stop, pos: -1}
}

func (c *stepCursor[T]) Advance() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		if c.stop != nil {
			c.stop()
		}
		var zero T
		c.cur = zero
		return false
	}
	c.cur = v
	c.pos++
	return true
}

func (c *stepCursor[T]) Current() T     { return c.cur }
func (c *stepCursor[T]) Pos() int       { return c.pos }
func (c *stepCursor[T]) Valid() bool    { return !c.done }
func (c *stepCursor[T]) CanReset() bool { return false }
func (c *stepCursor[T]) Reset() error   { return ErrUnsupportedOperation }

func (c *stepCursor[T]) Close() {
	if c.stop != nil {
		c.stop()
	}
}
