package seqs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/seqs"
)

func TestDistinct(t *testing.T) {
	got := seqs.Of(1, 2, 1, 3, 2, 1).Distinct().ToSlice()
	require.Equal(t, []int{1, 2, 3}, got, "first-seen order is preserved")
}

func TestDistinctIsIdempotent(t *testing.T) {
	src := seqs.Of(3, 1, 3, 2, 2)
	once := src.Distinct().ToSlice()
	twice := src.Distinct().Distinct().ToSlice()
	require.Equal(t, once, twice)
}

func TestDistinctWithCustomEquality(t *testing.T) {
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }
	got := seqs.Of("a", "A", "b", "B", "a").Distinct(caseless).ToSlice()
	require.Equal(t, []string{"a", "b"}, got)
}

func TestExcept(t *testing.T) {
	got := seqs.Of(1, 2, 2, 3, 4).Except(seqs.Of(2, 4)).ToSlice()
	require.Equal(t, []int{1, 3}, got)
}

func TestExceptResultIsDistinct(t *testing.T) {
	got := seqs.Of(1, 1, 3, 3).Except(seqs.Of(2)).ToSlice()
	require.Equal(t, []int{1, 3}, got)
}

func TestIntersect(t *testing.T) {
	got := seqs.Of(1, 2, 3, 4, 3).Intersect(seqs.Of(3, 4, 5)).ToSlice()
	require.Equal(t, []int{3, 4}, got, "order follows the receiver, duplicates collapse")
}

func TestUnionContainsEachElementExactlyOnce(t *testing.T) {
	a := seqs.Of(1, 2, 2, 3)
	b := seqs.Of(3, 4, 4, 5)
	got := a.Union(b).ToSlice()
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)

	for _, v := range []int{1, 2, 3, 4, 5} {
		n := 0
		for _, g := range got {
			if g == v {
				n++
			}
		}
		require.Equal(t, 1, n, "element %d appears exactly once", v)
	}
}

func TestLooseEqualityAcrossNumericKinds(t *testing.T) {
	got := seqs.Of[any](1, 1.0, int64(1), "x").Distinct().ToSlice()
	require.Equal(t, []any{1, "x"}, got, "numeric values compare by value across kinds")
}

func TestStrictEqualityDistinguishesTypes(t *testing.T) {
	got := seqs.Of[any](1, 1.0, 1).Distinct(seqs.Strict[any]()).ToSlice()
	require.Equal(t, []any{1, 1.0}, got)
}

func TestSetOpsAreLazyUntilPulled(t *testing.T) {
	n := 0
	other := seqs.FromNext(func() (int, bool) {
		n++
		return n, n <= 2
	})

	diff := seqs.Of(1, 2, 3).Except(other)
	require.Zero(t, n, "the other side is not materialized at construction")
	require.Equal(t, []int{3}, diff.ToSlice())
	require.Equal(t, 3, n)
}
