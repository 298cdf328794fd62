package seqs

import (
	"cmp"
	"reflect"
	"strconv"
	"strings"
)

// coerceFloat widens an arbitrary value to float64 the permissive way:
// numeric kinds convert directly, booleans map to 0/1, strings parse
// as decimal numbers, and anything else (including empty or malformed
// strings and nil) coerces to 0.
func coerceFloat(v any) float64 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Sum adds the coerced value of every item.
func (s *Sequence[T]) Sum() float64 {
	return Fold(s, 0.0, func(acc float64, item T, _ *Context[T]) float64 {
		return acc + coerceFloat(item)
	})
}

// Average returns the arithmetic mean of the coerced item values, or 0
// for an empty sequence. The running total is threaded through the
// stage's consecutive carry channel (NextValue -> PreviousValue).
func (s *Sequence[T]) Average() float64 {
	c := s.newCursor()
	defer c.Close()
	st := &stage[T]{}
	count := 0
	var total float64
	for c.Advance() {
		ctx := st.enter(c)
		prev, _ := ctx.PreviousValue.(float64)
		total = prev + coerceFloat(c.Current())
		ctx.NextValue = total
		count++
		if st.leave(ctx) {
			break
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MinBy returns the item with the smallest key. The first minimal item
// wins on ties. Fails with ErrEmptySequence on an empty sequence.
func MinBy[T any, K cmp.Ordered](src *Sequence[T], key KeySelector[T, K]) (T, error) {
	return extremeBy(src, key, func(candidate, best K) bool { return candidate < best })
}

// MaxBy returns the item with the largest key. The first maximal item
// wins on ties. Fails with ErrEmptySequence on an empty sequence.
func MaxBy[T any, K cmp.Ordered](src *Sequence[T], key KeySelector[T, K]) (T, error) {
	return extremeBy(src, key, func(candidate, best K) bool { return candidate > best })
}

func extremeBy[T any, K cmp.Ordered](src *Sequence[T], key KeySelector[T, K], better func(candidate, best K) bool) (T, error) {
	c := src.Cursor()
	defer c.Close()
	st := &stage[T]{}
	var best T
	var bestKey K
	found := false
	for c.Advance() {
		item := c.Current()
		ctx := st.enter(c)
		k := key(item, ctx)
		cancelled := st.leave(ctx)
		if !found || better(k, bestKey) {
			best, bestKey, found = item, k, true
		}
		if cancelled {
			break
		}
	}
	if !found {
		var zero T
		return zero, ErrEmptySequence
	}
	return best, nil
}
