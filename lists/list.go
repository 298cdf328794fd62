package lists

// List is a Collection with the stack/bulk conveniences of a dynamic
// array.
type List[T any] struct {
	*Collection[T]
}

// NewList builds a list over the given values with the default loose
// equality.
func NewList[T any](values ...T) *List[T] {
	return &List[T]{Collection: NewCollection(values...)}
}

// NewListWith builds a list with an explicit equality.
func NewListWith[T any](equal func(a, b T) bool, values ...T) *List[T] {
	return &List[T]{Collection: NewCollectionWith(equal, values...)}
}

// Push appends a value to the end of the list.
func (l *List[T]) Push(value T) error { return l.Add(value) }

// Pop removes and returns the final value.
func (l *List[T]) Pop() (T, error) {
	return l.RemoveAt(l.Len() - 1)
}

// InsertAll inserts the values at index with one allocation (if any)
// and one shift.
func (l *List[T]) InsertAll(index int, values ...T) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfBounds
	}
	n := len(values)
	if n == 0 {
		return nil
	}

	oldLen := len(l.items)
	newLen := oldLen + n

	if newLen > cap(l.items) {
		newCap := max(newLen, 2*oldLen)
		grown := make([]T, newLen, newCap)
		copy(grown, l.items[:index])
		copy(grown[index+n:], l.items[index:])
		copy(grown[index:], values)
		l.items = grown
	} else {
		l.items = l.items[:newLen]
		// copy handles the overlapping shift correctly
		copy(l.items[index+n:], l.items[index:])
		copy(l.items[index:], values)
	}
	l.changed = true
	return nil
}
