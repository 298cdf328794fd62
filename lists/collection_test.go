package lists_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/lists"
	"ripple/seqs"
)

func TestCollectionMutation(t *testing.T) {
	c := lists.NewCollection(1, 2, 3)

	require.False(t, c.Changed())
	require.NoError(t, c.Add(4, 5))
	require.True(t, c.Changed())
	require.Equal(t, 5, c.Len())

	removed, err := c.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, []int{2, 3, 4, 5}, c.ToSlice())

	ok, err := c.Remove(4)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Remove(99)
	require.NoError(t, err)
	require.False(t, ok)

	n, err := c.RemoveAll(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int{2}, c.ToSlice())

	require.NoError(t, c.Clear())
	require.True(t, c.IsEmpty())
}

func TestCollectionIndexAccess(t *testing.T) {
	c := lists.NewCollection("a", "b", "c")

	v, err := c.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = c.Get(3)
	require.ErrorIs(t, err, lists.ErrIndexOutOfBounds)

	require.NoError(t, c.Set(1, "B"))
	require.ErrorIs(t, c.Set(-1, "x"), lists.ErrIndexOutOfBounds)

	require.NoError(t, c.Insert(0, "z"))
	require.Equal(t, []string{"z", "a", "B", "c"}, c.ToSlice())
	require.ErrorIs(t, c.Insert(9, "x"), lists.ErrIndexOutOfBounds)

	require.Equal(t, 2, c.IndexOf("B"))
	require.Equal(t, -1, c.IndexOf("missing"))
	require.True(t, c.Contains("z"))
}

func TestReadOnlyViewRejectsMutation(t *testing.T) {
	c := lists.NewCollection(1, 2)
	ro := c.ReadOnly()

	require.True(t, ro.IsReadOnly())
	require.ErrorIs(t, ro.Add(3), lists.ErrReadOnly)
	require.ErrorIs(t, ro.Clear(), lists.ErrReadOnly)
	require.ErrorIs(t, ro.Set(0, 9), lists.ErrReadOnly)
	_, err := ro.RemoveAt(0)
	require.ErrorIs(t, err, lists.ErrReadOnly)
	_, err = ro.Remove(1)
	require.ErrorIs(t, err, lists.ErrReadOnly)
	_, err = ro.RemoveAll(func(int) bool { return true })
	require.ErrorIs(t, err, lists.ErrReadOnly)

	// reading still works
	v, err := ro.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, []int{1, 2}, ro.ToSlice())
}

func TestChangedFlagLifecycle(t *testing.T) {
	c := lists.NewCollection(1)
	require.NoError(t, c.Add(2))
	require.True(t, c.Changed())
	c.ResetChanged()
	require.False(t, c.Changed())

	n, err := c.RemoveAll(func(int) bool { return false })
	require.NoError(t, err)
	require.Zero(t, n)
	require.False(t, c.Changed(), "a removal that removed nothing is not a change")
}

func TestCollectionQuerySurface(t *testing.T) {
	c := lists.NewCollection(3, 1, 2, 3)

	got := c.Seq().Distinct().ToSlice()
	require.Equal(t, []int{3, 1, 2}, got)

	require.NoError(t, c.AddRange(seqs.Of(7, 8)))
	require.Equal(t, []int{3, 1, 2, 3, 7, 8}, c.ToSlice())

	// each traversal sees the collection's current state
	require.NoError(t, c.Add(9))
	require.Equal(t, 7, c.Seq().Count())
}
