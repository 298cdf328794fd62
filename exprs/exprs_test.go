package exprs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/exprs"
	"ripple/seqs"
)

func TestPredicate(t *testing.T) {
	pred, err := exprs.Predicate[int]("it % 2 == 0")
	require.NoError(t, err)

	got := seqs.Of(1, 2, 3, 4, 5).Where(pred).ToSlice()
	require.Equal(t, []int{2, 4}, got)
}

func TestPredicateWithIndex(t *testing.T) {
	pred, err := exprs.Predicate[string]("index < 2")
	require.NoError(t, err)

	got := seqs.Of("a", "b", "c").Where(pred).ToSlice()
	require.Equal(t, []string{"a", "b"}, got)
}

func TestSelector(t *testing.T) {
	sel, err := exprs.Selector[int]("it * it")
	require.NoError(t, err)

	got := seqs.Select(seqs.Of(1, 2, 3), sel).ToSlice()
	require.Equal(t, []any{int64(1), int64(4), int64(9)}, got)
}

func TestKeyGrouping(t *testing.T) {
	key, err := exprs.Key[int]("it % 2")
	require.NoError(t, err)

	groups := seqs.GroupBy(seqs.Of(1, 2, 3, 4), key).ToSlice()
	require.Len(t, groups, 2)
	require.Equal(t, []int{1, 3}, groups[0].ToSlice())
	require.Equal(t, []int{2, 4}, groups[1].ToSlice())
}

func TestMalformedExpressionFails(t *testing.T) {
	_, err := exprs.Compile("it +")
	require.ErrorIs(t, err, exprs.ErrInvalidExpression)

	_, err = exprs.Predicate[int]("((")
	require.ErrorIs(t, err, exprs.ErrInvalidExpression)
}

func TestUnknownVariableFails(t *testing.T) {
	_, err := exprs.Compile("nosuch > 1")
	require.ErrorIs(t, err, exprs.ErrInvalidExpression)
}

func TestEvalTypeMismatchCountsAsNoMatch(t *testing.T) {
	pred, err := exprs.Predicate[string]("it % 2 == 0")
	require.NoError(t, err)

	got := seqs.Of("a", "b").Where(pred).ToSlice()
	require.Empty(t, got)
}

func TestExpressionSource(t *testing.T) {
	e, err := exprs.Compile("it == 1")
	require.NoError(t, err)
	require.Equal(t, "it == 1", e.Source())

	v, err := e.Eval(1, 0)
	require.NoError(t, err)
	require.Equal(t, true, v)
}
