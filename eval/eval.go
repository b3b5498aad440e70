// Package eval implements the evaluator: a pair of mutually recursive
// functions over (environment, value) -> value, walking the value tree
// directly rather than compiling to an intermediate expression form, since
// the callables here mutate and retag cells destructively as they go.
package eval

import (
	"github.com/jfpedroza/lispy/callable"
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// Eval reduces v in env to its final Value. Symbols and CNames resolve
// against env; SExprs recurse through evalSExpr; everything else is
// self-evaluating.
func Eval(env *lenv.Environment, v value.Object) value.Object {
	switch t := v.(type) {
	case value.Symbol:
		return env.Get(t.Name())
	case value.CName:
		return env.Get(t.Name())
	case *value.SExpr:
		return evalSExpr(env, t)
	default:
		return v
	}
}

// evalSExpr is the heart of the evaluator.
func evalSExpr(env *lenv.Environment, v *value.SExpr) value.Object {
	if v.Len() == 0 {
		return v
	}

	resolved := Eval(env, v.Items[0])
	v.SetFirst(resolved)

	if v.Len() == 1 {
		val := v.PopFirst()
		if cmd, isCommand := callable.GetCommand(val); isCommand {
			result, err := cmd.Call(env, nil)
			if err != nil {
				return value.MakeError(err.Error())
			}
			return result
		}
		return val
	}

	f := v.PopFirst()

	if errVal, isErr := value.GetError(f); isErr {
		return errVal
	}

	if fn, isFunc := callable.GetFunction(f); isFunc {
		evaled := evalCells(env, v)
		args, isSExpr := value.GetSExpr(evaled)
		if !isSExpr {
			return evaled
		}
		result, err := fn.Call(env, args.Items, EvalQExpr)
		if err != nil {
			return value.MakeError(err.Error())
		}
		return result
	}

	if mac, isMacro := callable.GetMacro(f); isMacro {
		return callQuoting(env, mac.Call, v)
	}

	if cmd, isCommand := callable.GetCommand(f); isCommand {
		return callQuoting(env, func(env *lenv.Environment, args []value.Object, _ callable.EvalQExpr) (value.Object, error) {
			return cmd.Call(env, args)
		}, v)
	}

	return errs.SExprNotFunction(value.Kind(f))
}

// callQuoting retags v's remaining cells as a QExpr without evaluating them,
// then invokes call with those cells.
func callQuoting(
	env *lenv.Environment,
	call func(*lenv.Environment, []value.Object, callable.EvalQExpr) (value.Object, error),
	v *value.SExpr,
) value.Object {
	q := v.ToQExpr()
	result, err := call(env, q.Items, EvalQExpr)
	if err != nil {
		return value.MakeError(err.Error())
	}
	return result
}

// EvalQExpr bridges a quoted body back into evaluation: retag as SExpr, then
// evalSExpr. It is passed to callable.Call as the EvalQExpr hook so the
// partial-application binder can run a fully-bound callable's body without
// this package's eval logic needing to live inside callable (which would
// create an import cycle, since callable must also dispatch on
// Function/Macro/Command tags that eval produces).
func EvalQExpr(env *lenv.Environment, body *value.QExpr) value.Object {
	return evalSExpr(env, body.ToSExpr())
}

// evalCells evaluates every cell of v in order, short-circuiting on the
// first Error.
func evalCells(env *lenv.Environment, v *value.SExpr) value.Object {
	for i, cell := range v.Items {
		result := Eval(env, cell)
		if errVal, isErr := value.GetError(result); isErr {
			return errVal
		}
		v.Items[i] = result
	}
	return v
}
