package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/seqs"
)

func TestSkipAndTake(t *testing.T) {
	s := seqs.Range(1, 11, 1)

	require.Equal(t, []int{4, 5, 6}, s.Skip(3).Take(3).ToSlice())
	require.Empty(t, s.Take(0).ToSlice())
	require.Empty(t, s.Skip(100).ToSlice())
	require.Equal(t, []int{1, 2}, s.Take(2).ToSlice())
}

func TestTakeWhile(t *testing.T) {
	got := seqs.Of(1, 2, 3, 1, 2).TakeWhile(func(v int, _ *seqs.Context[int]) bool {
		return v < 3
	}).ToSlice()
	require.Equal(t, []int{1, 2}, got, "stops for good at the first failing item")
}

func TestSkipWhile(t *testing.T) {
	got := seqs.Of(1, 2, 3, 1, 2).SkipWhile(func(v int, _ *seqs.Context[int]) bool {
		return v < 3
	}).ToSlice()
	require.Equal(t, []int{3, 1, 2}, got, "once dropping ends, later items pass unconditionally")
}

func TestSkipLast(t *testing.T) {
	t.Run("One", func(t *testing.T) {
		got := seqs.Of(1, 2, 3, 4).SkipLast(1).ToSlice()
		require.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("Many", func(t *testing.T) {
		got := seqs.Of(1, 2, 3, 4, 5).SkipLast(3).ToSlice()
		require.Equal(t, []int{1, 2}, got)
	})

	t.Run("MoreThanLength", func(t *testing.T) {
		require.Empty(t, seqs.Of(1, 2).SkipLast(5).ToSlice())
	})

	t.Run("Zero", func(t *testing.T) {
		require.Equal(t, []int{1, 2}, seqs.Of(1, 2).SkipLast(0).ToSlice())
	})
}

func TestDefaultIfEmpty(t *testing.T) {
	require.Equal(t, []int{42}, seqs.Empty[int]().DefaultIfEmpty(42).ToSlice())
	require.Equal(t, []int{1, 2}, seqs.Of(1, 2).DefaultIfEmpty(42).ToSlice())
}

func TestReverse(t *testing.T) {
	require.Equal(t, []int{3, 2, 1}, seqs.Of(1, 2, 3).Reverse().ToSlice())
	require.Empty(t, seqs.Empty[int]().Reverse().ToSlice())
}

func TestPeekObservesWithoutModifying(t *testing.T) {
	var observed []int
	got := seqs.Of(1, 2, 3).Peek(func(v int, _ *seqs.Context[int]) {
		observed = append(observed, v)
	}).ToSlice()

	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, []int{1, 2, 3}, observed)
}
