package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/builtins"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/parser"
	"github.com/jfpedroza/lispy/reader"
	"github.com/jfpedroza/lispy/value"
)

// run parses src, evaluates every top-level form against a fresh root
// environment, and returns the printed results of each form in order,
// matching the REPL's one-result-per-form behavior.
func run(t *testing.T, src string) []string {
	t.Helper()
	env := lenv.NewRoot()
	builtins.Register(env, &builtins.Flags{})
	tree, err := parser.ParseString(src, "<test>")
	require.NoError(t, err)
	forms, ok := value.GetSExpr(reader.Read(tree))
	require.True(t, ok)
	var out []string
	for _, form := range forms.Items {
		out = append(out, value.Repr(eval.Eval(env, form)))
	}
	return out
}

// TestEndToEndScenarios covers a spread of representative programs end to end.
func TestEndToEndScenarios(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"6"}, run(t, "(+ 1 2 3)"))
	assert.Equal(t, []string{"Error: Division by zero!"}, run(t, "(/ 10 0)"))
	assert.Equal(t, []string{"()", "42"}, run(t, "(def {x} 41) (+ x 1)"))
	assert.Equal(t, []string{"7"}, run(t, "((\\ {x y} {+ x y}) 3 4)"))
	assert.Equal(t, []string{"(\\ {y} {+ x y})"}, run(t, "((\\ {x y} {+ x y}) 3)"))
	assert.Equal(t, []string{"10"}, run(t, "(if (== 1 1) {10} {20})"))
	assert.Equal(t, []string{"{1}"}, run(t, "(head {1 2 3})"))
	assert.Equal(t, []string{`"bc"`}, run(t, `(tail "abc")`))
	assert.Equal(t, []string{"3"}, run(t, "(len {a b c})"))
	assert.Equal(t, []string{"3"}, run(t, "(eval {+ 1 2})"))
	assert.Equal(t, []string{"{1 2 3}"}, run(t, "((\\ {& xs} {xs}) 1 2 3)"))
}

// TestBoundaryCases covers a handful of edge-case programs.
func TestBoundaryCases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"()"}, run(t, "()"))
	assert.Equal(t, []string{"-5"}, run(t, "(- 5)"))
	assert.Equal(t, []string{"1"}, run(t, "(min 1 2 3)"))
	assert.Equal(t, []string{"3"}, run(t, "(max 1 2 3)"))
	assert.Equal(t, []string{"1"}, run(t, "(min 1 1)"))
	assert.Contains(t, run(t, "(join {1} \"a\")")[0], "Error")
	assert.Equal(t, []string{"()", "{5}"}, run(t, "(def {x} 5) (cons x {})"))
	assert.Equal(t, []string{"{}"}, run(t, "(init {1})"))
	assert.Equal(t, []string{"Error: boom"}, run(t, `(error "boom")`))
	assert.Contains(t, run(t, "(= {x y} 1 2 3)")[0], "incorrect number of values")
}

// TestMacroArgumentWrapping checks that (\! {a} {a}) applied to foo binds
// a to {foo}, not to foo's evaluated value.
func TestMacroArgumentWrapping(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"{foo}"}, run(t, "((\\! {a} {a}) foo)"))
}

// TestErrorAbsorption checks that an Error subvalue anywhere in an eager
// call short-circuits the whole S-expression.
func TestErrorAbsorption(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Error: Division by zero!"}, run(t, "(+ 1 (/ 1 0) 2)"))
}

// TestEnvironmentScoping checks that def always binds globally while = binds
// to the current frame.
func TestEnvironmentScoping(t *testing.T) {
	t.Parallel()
	env := lenv.NewRoot()
	builtins.Register(env, &builtins.Flags{})

	evalSrc := func(src string) value.Object {
		tree, err := parser.ParseString(src, "<test>")
		require.NoError(t, err)
		forms, _ := value.GetSExpr(reader.Read(tree))
		var last value.Object
		for _, form := range forms.Items {
			last = eval.Eval(env, form)
		}
		return last
	}

	child := lenv.NewChild(env)
	builtins.Put(child, []value.Object{value.Symbol("localvar"), value.Integer(1)})
	_, ok := env.Get("localvar").(*value.Error)
	assert.True(t, ok, "= in a nested frame must not leak to root")

	evalSrc("(def {globalvar} 7)")
	assert.Equal(t, value.Integer(7), env.Get("globalvar"))
}

// TestEvalQExprBridgesToSExpr checks that evaluating a Q-expression produces
// the same result as evaluating the equivalent S-expression.
func TestEvalQExprBridgesToSExpr(t *testing.T) {
	t.Parallel()
	env := lenv.NewRoot()
	builtins.Register(env, &builtins.Flags{})
	body := value.NewQExpr(value.Symbol("+"), value.Integer(1), value.Integer(2))
	assert.Equal(t, value.Integer(3), eval.EvalQExpr(env, body))
}
