package builtins

import (
	"github.com/jfpedroza/lispy/callable"
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// symbolList coerces the first argument of def/= into a slice of Symbol
// names: a bare Symbol is auto-wrapped as a one-element list; a QExpr of
// Symbols is used as-is.
func symbolList(name string, first value.Object) ([]value.Symbol, *value.Error) {
	if sym, ok := value.GetSymbol(first); ok {
		return []value.Symbol{sym}, nil
	}
	q, ok := value.GetQExpr(first)
	if !ok {
		return nil, errs.CannotDefineNonSymbol(name, value.Kind(first))
	}
	syms, ok := q.Symbols()
	if !ok {
		return nil, errs.CannotDefineNonSymbol(name, "QExpr")
	}
	return syms, nil
}

func bindVars(name string, env *lenv.Environment, args []value.Object, put func(*lenv.Environment, string, value.Object)) (value.Object, error) {
	if errv := CheckArgs(name, args, 2, -1); errv != nil {
		return errv, nil
	}
	first := args[0]
	if sexpr, isSExpr := value.GetSExpr(first); isSExpr {
		resolved := eval.Eval(env, sexpr)
		if errVal, isErr := value.GetError(resolved); isErr {
			return errVal, nil
		}
		first = resolved
	}
	syms, errv := symbolList(name, first)
	if errv != nil {
		return errv, nil
	}
	if len(syms) != len(args)-1 {
		return errs.CannotDefineMismatchedValues(name), nil
	}
	values := make([]value.Object, len(syms))
	for i, a := range args[1:] {
		v := eval.Eval(env, a)
		if errVal, isErr := value.GetError(v); isErr {
			return errVal, nil
		}
		values[i] = v
	}
	for i, s := range syms {
		put(env, s.Name(), values[i])
	}
	return value.EmptySExpr(), nil
}

// Def implements `def {syms} v1 v2 …`: binds in the root environment.
func Def(env *lenv.Environment, args []value.Object) (value.Object, error) {
	return bindVars("def", env, args, func(e *lenv.Environment, n string, v value.Object) { e.Def(n, v) })
}

// Put implements `= {syms} v1 v2 …`: binds in the current environment.
func Put(env *lenv.Environment, args []value.Object) (value.Object, error) {
	return bindVars("=", env, args, func(e *lenv.Environment, n string, v value.Object) { e.Put(n, v) })
}

// Lambda implements `\ {formals} {body}`: builds a user function.
func Lambda(env *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs(`\`, args, 2, 2); errv != nil {
		return errv, nil
	}
	formals, errv := GetQExpr(`\`, args, 0)
	if errv != nil {
		return errv, nil
	}
	body, errv := GetQExpr(`\`, args, 1)
	if errv != nil {
		return errv, nil
	}
	if _, ok := formals.Symbols(); !ok {
		return errs.CannotDefineNonSymbol(`\`, "QExpr"), nil
	}
	fn, err := callable.NewClosure(formals, body, env.Clone())
	if err != nil {
		return value.MakeError(err.Error()), nil
	}
	return fn, nil
}

// LambdaMacro implements `\! {formals} {body}`: builds a user macro.
func LambdaMacro(env *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs(`\!`, args, 2, 2); errv != nil {
		return errv, nil
	}
	formals, errv := GetQExpr(`\!`, args, 0)
	if errv != nil {
		return errv, nil
	}
	body, errv := GetQExpr(`\!`, args, 1)
	if errv != nil {
		return errv, nil
	}
	if _, ok := formals.Symbols(); !ok {
		return errs.CannotDefineNonSymbol(`\!`, "QExpr"), nil
	}
	mac, err := callable.NewUserMacro(formals, body, env.Clone())
	if err != nil {
		return value.MakeError(err.Error()), nil
	}
	return mac, nil
}
