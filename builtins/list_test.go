package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/builtins"
	"github.com/jfpedroza/lispy/value"
)

func TestHeadOnStringAndQExpr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, value.String("a"), call(t, builtins.Head, value.String("abc")))
	assert.Equal(t, "{1}", value.Repr(call(t, builtins.Head, value.NewQExpr(value.Integer(1), value.Integer(2)))))
}

func TestHeadEmptyIsError(t *testing.T) {
	t.Parallel()
	result := call(t, builtins.Head, value.EmptyQExpr())
	errVal, ok := value.GetError(result)
	require.True(t, ok)
	assert.Equal(t, "Function 'head' passed {}!", errVal.Message)
}

func TestTailOnString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, value.String("bc"), call(t, builtins.Tail, value.String("abc")))
}

func TestInitDropsLast(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{}", value.Repr(call(t, builtins.Init, value.NewQExpr(value.Integer(1)))))
	assert.Equal(t, "{1 2}", value.Repr(call(t, builtins.Init, value.NewQExpr(value.Integer(1), value.Integer(2), value.Integer(3)))))
}

func TestConsPrepends(t *testing.T) {
	t.Parallel()
	result := call(t, builtins.Cons, value.Integer(0), value.NewQExpr(value.Integer(1)))
	assert.Equal(t, "{0 1}", value.Repr(result))
}

func TestJoinRequiresSameType(t *testing.T) {
	t.Parallel()
	result := call(t, builtins.Join, value.NewQExpr(value.Integer(1)), value.String("a"))
	_, isErr := value.GetError(result)
	assert.True(t, isErr)
}

func TestJoinStrings(t *testing.T) {
	t.Parallel()
	result := call(t, builtins.Join, value.String("a"), value.String("b"))
	assert.Equal(t, value.String("ab"), result)
}

func TestLenCountsCellsOrBytes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, value.Integer(3), call(t, builtins.Len, value.NewQExpr(value.Integer(1), value.Integer(2), value.Integer(3))))
	assert.Equal(t, value.Integer(3), call(t, builtins.Len, value.String("abc")))
}

func TestListWrapsArguments(t *testing.T) {
	t.Parallel()
	result := call(t, builtins.List, value.Integer(1), value.Integer(2))
	assert.Equal(t, "{1 2}", value.Repr(result))
}
