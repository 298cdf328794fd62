package lists_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/lists"
)

func TestListPushPop(t *testing.T) {
	l := lists.NewList(1, 2)

	require.NoError(t, l.Push(3))
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())

	v, err := l.Pop()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = lists.NewList[int]().Pop()
	require.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
}

func TestListInsertAll(t *testing.T) {
	t.Run("Middle", func(t *testing.T) {
		l := lists.NewList(1, 5)
		require.NoError(t, l.InsertAll(1, 2, 3, 4))
		require.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
	})

	t.Run("Ends", func(t *testing.T) {
		l := lists.NewList(2)
		require.NoError(t, l.InsertAll(0, 1))
		require.NoError(t, l.InsertAll(l.Len(), 3))
		require.Equal(t, []int{1, 2, 3}, l.ToSlice())
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		l := lists.NewList(1)
		require.ErrorIs(t, l.InsertAll(5, 9), lists.ErrIndexOutOfBounds)
	})

	t.Run("Empty", func(t *testing.T) {
		l := lists.NewList(1)
		require.NoError(t, l.InsertAll(0))
		require.Equal(t, []int{1}, l.ToSlice())
	})
}

func TestListWithCustomEquality(t *testing.T) {
	l := lists.NewListWith(func(a, b string) bool { return len(a) == len(b) }, "aa", "b")
	require.Equal(t, 0, l.IndexOf("xx"), "equality is by length")
	require.True(t, l.Contains("z"))
}
