package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/value"
)

func TestNumberIsEqualCrossKind(t *testing.T) {
	t.Parallel()
	assert.True(t, value.Integer(2).IsEqual(value.Decimal(2.0)))
	assert.True(t, value.Decimal(2.0).IsEqual(value.Integer(2)))
	assert.False(t, value.Integer(2).IsEqual(value.Integer(3)))
	assert.False(t, value.Integer(2).IsEqual(value.String("2")))
}

func TestQExprIsEqualCellByCell(t *testing.T) {
	t.Parallel()
	a := value.NewQExpr(value.Integer(1), value.Symbol("x"))
	b := value.NewQExpr(value.Integer(1), value.Symbol("x"))
	c := value.NewQExpr(value.Integer(1), value.Symbol("y"))
	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()
	orig := value.NewQExpr(value.Integer(1), value.NewQExpr(value.Integer(2)))
	clone := orig.Clone().(*value.QExpr)
	clone.Items[0] = value.Integer(99)
	require.Equal(t, value.Integer(1), orig.Items[0])
	require.Equal(t, value.Integer(99), clone.Items[0])
}

func TestPrintForms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		v    value.Object
		want string
	}{
		{value.Integer(42), "42"},
		{value.Boolean(true), "true"},
		{value.Boolean(false), "false"},
		{value.String("hi"), `"hi"`},
		{value.Symbol("x"), "x"},
		{value.CName(".clear"), ".clear"},
		{value.MakeError("boom"), "Error: boom"},
		{value.NewSExpr(value.Integer(1), value.Integer(2)), "(1 2)"},
		{value.NewQExpr(value.Integer(1), value.Integer(2)), "{1 2}"},
		{value.EmptySExpr(), "()"},
		{value.EmptyQExpr(), "{}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, value.Repr(tc.v))
	}
}

func TestSExprToQExprRetagSharesBackingCells(t *testing.T) {
	t.Parallel()
	s := value.NewSExpr(value.Integer(1), value.Integer(2))
	q := s.ToQExpr()
	require.Equal(t, 2, q.Len())
	assert.Equal(t, "{1 2}", value.Repr(q))
}

func TestNumericPromotion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, value.Integer(5), value.NumAdd(value.Integer(2), value.Integer(3)))
	assert.Equal(t, value.Decimal(5.5), value.NumAdd(value.Integer(2), value.Decimal(3.5)))
	assert.True(t, value.IsDecimal(value.Integer(1), value.Decimal(2)))
	assert.False(t, value.IsDecimal(value.Integer(1), value.Integer(2)))
}

func TestNumDivByZero(t *testing.T) {
	t.Parallel()
	_, err := value.NumDiv(value.Integer(1), value.Integer(0))
	require.ErrorIs(t, err, value.ErrDivisionByZero)
}
