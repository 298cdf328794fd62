package seqs

import (
	"cmp"
	"reflect"
)

// Equality decides whether two items are considered the same element.
// Set algebra, grouping and joins scan linearly with the configured
// equality, so it may be arbitrary and need not map to a hashable key.
type Equality[T any] func(a, b T) bool

// Comparer orders two keys: negative when a sorts before b, zero on a
// tie, positive when a sorts after b.
type Comparer[T any] func(a, b T) int

// Equate is the == equality for comparable types.
func Equate[T comparable]() Equality[T] {
	return func(a, b T) bool { return a == b }
}

// Loose is the default equality: numeric values compare by value
// across kinds (int 1 equals float64 1), everything else falls back to
// reflect.DeepEqual.
func Loose[T any]() Equality[T] {
	return func(a, b T) bool { return looseEqual(a, b) }
}

// Strict requires identical dynamic types before comparing values.
// It only differs from Loose for interface-typed items.
func Strict[T any]() Equality[T] {
	return func(a, b T) bool {
		if reflect.TypeOf(a) != reflect.TypeOf(b) {
			return false
		}
		return reflect.DeepEqual(a, b)
	}
}

// Natural is the Comparer for naturally ordered keys.
func Natural[T cmp.Ordered]() Comparer[T] {
	return cmp.Compare[T]
}

// equalityOf resolves the optional equality argument every set/group
// operator accepts, defaulting to Loose.
func equalityOf[T any](eq []Equality[T]) Equality[T] {
	if len(eq) > 0 && eq[0] != nil {
		return eq[0]
	}
	return Loose[T]()
}

func looseEqual(a, b any) bool {
	if af, ok := numericValue(a); ok {
		if bf, ok := numericValue(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

// numericValue widens any numeric kind to float64.
func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
