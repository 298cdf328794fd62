package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/seqs"
)

func TestGroupByParity(t *testing.T) {
	groups := seqs.GroupBy(seqs.Of(1, 2, 3, 4), func(v int, _ *seqs.Context[int]) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	}).ToSlice()

	require.Len(t, groups, 2)
	require.Equal(t, "odd", groups[0].Key(), "groups come in first-seen order")
	require.Equal(t, []int{1, 3}, groups[0].ToSlice())
	require.Equal(t, "even", groups[1].Key())
	require.Equal(t, []int{2, 4}, groups[1].ToSlice())
}

func TestGroupByIsLazyUntilPulled(t *testing.T) {
	calls := 0
	g := seqs.GroupBy(seqs.Of(1, 2), func(v int, _ *seqs.Context[int]) int {
		calls++
		return v
	})
	require.Zero(t, calls)
	g.ToSlice()
	require.Equal(t, 2, calls)
}

func TestGroupByCustomKeyEquality(t *testing.T) {
	// bucket keys by magnitude: keys within 10 of each other group
	// together with the first-seen key winning
	near := func(a, b int) bool {
		d := a - b
		return d < 10 && d > -10
	}
	groups := seqs.GroupBy(seqs.Of(1, 5, 20, 25, 3), func(v int, _ *seqs.Context[int]) int {
		return v
	}, near).ToSlice()

	require.Len(t, groups, 2)
	require.Equal(t, []int{1, 5, 3}, groups[0].ToSlice())
	require.Equal(t, []int{20, 25}, groups[1].ToSlice())
}

func TestGroupingExposesQuerySurface(t *testing.T) {
	groups := seqs.GroupBy(seqs.Of(1, 2, 3, 4, 5), func(v int, _ *seqs.Context[int]) bool {
		return v%2 == 0
	}).ToSlice()

	odd := groups[0]
	require.Equal(t, 3, odd.Count())
	sum := odd.Sum()
	require.InDelta(t, 9.0, sum, 1e-9)
}

func TestToLookup(t *testing.T) {
	l := seqs.ToLookup(seqs.Of("apple", "avocado", "banana"), func(v string, _ *seqs.Context[string]) byte {
		return v[0]
	})

	require.Equal(t, 2, l.Count())
	require.True(t, l.Contains('a'))
	require.False(t, l.Contains('z'))
	require.Equal(t, []string{"apple", "avocado"}, l.Get('a').ToSlice())
	require.Empty(t, l.Get('z').ToSlice(), "a missing key yields an empty sequence")

	var keys []byte
	for g := range l.All() {
		keys = append(keys, g.Key())
	}
	require.Equal(t, []byte{'a', 'b'}, keys)
}
