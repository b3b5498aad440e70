package builtins

import (
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// Eq implements `==`: structural equality over any pair of values.
func Eq(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("==", args, 2, 2); errv != nil {
		return errv, nil
	}
	return value.MakeBoolean(structEqual(args[0], args[1])), nil
}

// Neq implements `!=`.
func Neq(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("!=", args, 2, 2); errv != nil {
		return errv, nil
	}
	return value.MakeBoolean(!structEqual(args[0], args[1])), nil
}

// structEqual implements cross-kind structural equality: numbers
// cross-compare Integer/Decimal; builtins compare by native function
// pointer identity; user callables compare by structural formals+body
// equality; everything else defers to the value's own IsEqual.
func structEqual(a, b value.Object) bool {
	an, aok := value.GetNumber(a)
	bn, bok := value.GetNumber(b)
	if aok && bok {
		return an.IsEqual(bn)
	}
	return value.IsNil(a) && value.IsNil(b) || (a != nil && a.IsEqual(b))
}

func numCompare(name string, args []value.Object, ok func(cmp int) bool) (value.Object, error) {
	if errv := CheckArgs(name, args, 2, 2); errv != nil {
		return errv, nil
	}
	x, errv := GetNumber(name, args, 0)
	if errv != nil {
		return errv, nil
	}
	y, errv := GetNumber(name, args, 1)
	if errv != nil {
		return errv, nil
	}
	return value.MakeBoolean(ok(value.NumCmp(x, y))), nil
}

// Gt implements `>`.
func Gt(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return numCompare(">", args, func(c int) bool { return c > 0 })
}

// Lt implements `<`.
func Lt(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return numCompare("<", args, func(c int) bool { return c < 0 })
}

// Ge implements `>=`.
func Ge(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return numCompare(">=", args, func(c int) bool { return c >= 0 })
}

// Le implements `<=`.
func Le(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return numCompare("<=", args, func(c int) bool { return c <= 0 })
}

// If implements `if bool {then} {else}`, evaluating and returning the
// chosen branch as if by eval_qexpr.
func If(env *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("if", args, 3, 3); errv != nil {
		return errv, nil
	}
	cond, ok := args[0].(value.Boolean)
	if !ok {
		return errs.WrongType("if", value.Kind(args[0]), "Boolean"), nil
	}
	thenBranch, errv := GetQExpr("if", args, 1)
	if errv != nil {
		return errv, nil
	}
	elseBranch, errv := GetQExpr("if", args, 2)
	if errv != nil {
		return errv, nil
	}
	if bool(cond) {
		return eval.EvalQExpr(env, thenBranch), nil
	}
	return eval.EvalQExpr(env, elseBranch), nil
}
