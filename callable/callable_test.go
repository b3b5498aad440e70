package callable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/builtins"
	"github.com/jfpedroza/lispy/callable"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

func newRootEnv() *lenv.Environment {
	env := lenv.NewRoot()
	builtins.Register(env, &builtins.Flags{})
	return env
}

// TestPartialApplication checks that `((\ {x y} {+ x y}) 3)` yields a
// closure with formals {y} that, applied to 4, yields 7.
func TestPartialApplication(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("x"), value.Symbol("y"))
	body := value.NewQExpr(value.Symbol("+"), value.Symbol("x"), value.Symbol("y"))
	fn, err := callable.NewClosure(formals, body, env.Clone())
	require.NoError(t, err)

	partial, callErr := fn.Call(env, []value.Object{value.Integer(3)}, eval.EvalQExpr)
	require.NoError(t, callErr)
	g, ok := callable.GetFunction(partial)
	require.True(t, ok, "expected a partially-applied Function, got %v", partial)
	assert.Equal(t, "(\\ {y} {+ x y})", value.Repr(g))

	result, callErr := g.Call(env, []value.Object{value.Integer(4)}, eval.EvalQExpr)
	require.NoError(t, callErr)
	assert.Equal(t, value.Integer(7), result)
}

func TestFullApplicationInOneCall(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("x"), value.Symbol("y"))
	body := value.NewQExpr(value.Symbol("+"), value.Symbol("x"), value.Symbol("y"))
	fn, err := callable.NewClosure(formals, body, env.Clone())
	require.NoError(t, err)

	result, callErr := fn.Call(env, []value.Object{value.Integer(3), value.Integer(4)}, eval.EvalQExpr)
	require.NoError(t, callErr)
	assert.Equal(t, value.Integer(7), result)
}

func TestTooManyArgumentsIsError(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("x"))
	body := value.NewQExpr(value.Symbol("x"))
	fn, err := callable.NewClosure(formals, body, env.Clone())
	require.NoError(t, err)

	result, callErr := fn.Call(env, []value.Object{value.Integer(1), value.Integer(2)}, eval.EvalQExpr)
	require.NoError(t, callErr)
	errVal, isErr := value.GetError(result)
	require.True(t, isErr)
	assert.Contains(t, errVal.Message, "too many arguments")
}

func TestVariadicRestGathersRemainingArgs(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("&"), value.Symbol("xs"))
	body := value.NewQExpr(value.Symbol("xs"))
	fn, err := callable.NewClosure(formals, body, env.Clone())
	require.NoError(t, err)

	result, callErr := fn.Call(env, []value.Object{value.Integer(1), value.Integer(2), value.Integer(3)}, eval.EvalQExpr)
	require.NoError(t, callErr)
	assert.Equal(t, "{1 2 3}", value.Repr(result))
}

func TestMacroWrapsArgumentsUnevaluated(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("a"))
	body := value.NewQExpr(value.Symbol("a"))
	mac, err := callable.NewUserMacro(formals, body, env.Clone())
	require.NoError(t, err)

	result, callErr := mac.Call(env, []value.Object{value.Symbol("foo")}, eval.EvalQExpr)
	require.NoError(t, callErr)
	assert.Equal(t, "{foo}", value.Repr(result))
}

func TestBuiltinEqualityByFuncPointer(t *testing.T) {
	t.Parallel()
	a := callable.NewBuiltinFunction("add", builtins.Add)
	b := callable.NewBuiltinFunction("add", builtins.Add)
	c := callable.NewBuiltinFunction("sub", builtins.Sub)
	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestDuplicateFormalsRejected(t *testing.T) {
	t.Parallel()
	env := newRootEnv()
	formals := value.NewQExpr(value.Symbol("x"), value.Symbol("x"))
	body := value.NewQExpr(value.Symbol("x"))
	_, err := callable.NewClosure(formals, body, env.Clone())
	require.Error(t, err)
}
