package builtins

import (
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// List implements `list v …`: wraps every argument into a Q-expression.
func List(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return &value.QExpr{Items: append([]value.Object(nil), args...)}, nil
}

// Eval implements `eval {q}`, bridging a quoted body back into evaluation
// via eval_qexpr.
func Eval(env *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("eval", args, 1, 1); errv != nil {
		return errv, nil
	}
	q, errv := GetQExpr("eval", args, 0)
	if errv != nil {
		return errv, nil
	}
	return eval.EvalQExpr(env, q), nil
}

// Head implements `head x`: for a Q-expression, the first element wrapped in
// a one-element Q-expression; for a String, its first character.
func Head(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("head", args, 1, 1); errv != nil {
		return errv, nil
	}
	switch a := args[0].(type) {
	case *value.QExpr:
		if a.Len() == 0 {
			return errs.EmptyQExpr("head"), nil
		}
		return value.NewQExpr(a.Items[0]), nil
	case value.String:
		if len(a) == 0 {
			return errs.EmptyString("head"), nil
		}
		r := []rune(string(a))
		return value.String(string(r[0])), nil
	default:
		return errs.WrongTypeOneOf("head", value.Kind(a), "QExpr", "String"), nil
	}
}

// Tail implements `tail x`: drops the first element (Q-expression) or
// character (String).
func Tail(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("tail", args, 1, 1); errv != nil {
		return errv, nil
	}
	switch a := args[0].(type) {
	case *value.QExpr:
		if a.Len() == 0 {
			return errs.EmptyQExpr("tail"), nil
		}
		return value.NewQExpr(a.Items[1:]...), nil
	case value.String:
		if len(a) == 0 {
			return errs.EmptyString("tail"), nil
		}
		r := []rune(string(a))
		return value.String(string(r[1:])), nil
	default:
		return errs.WrongTypeOneOf("tail", value.Kind(a), "QExpr", "String"), nil
	}
}

// Init implements `init q`: all cells but the last (Q-expression only).
func Init(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("init", args, 1, 1); errv != nil {
		return errv, nil
	}
	q, errv := GetNonEmptyQExpr("init", args, 0)
	if errv != nil {
		return errv, nil
	}
	return value.NewQExpr(q.Items[:q.Len()-1]...), nil
}

// Cons implements `cons x q`: prepends x to the Q-expression q.
func Cons(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("cons", args, 2, 2); errv != nil {
		return errv, nil
	}
	q, errv := GetQExpr("cons", args, 1)
	if errv != nil {
		return errv, nil
	}
	out := value.NewQExpr(args[0])
	out.Extend(q)
	return out, nil
}

// Join implements `join a b …`: every argument must share the same type
// (Q-expression or String), concatenated in order.
func Join(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("join", args, 1, -1); errv != nil {
		return errv, nil
	}
	switch args[0].(type) {
	case *value.QExpr:
		out := value.EmptyQExpr()
		for _, a := range args {
			q, ok := value.GetQExpr(a)
			if !ok {
				return errs.WrongType("join", value.Kind(a), "QExpr"), nil
			}
			out.Extend(q)
		}
		return out, nil
	case value.String:
		var out string
		for _, a := range args {
			s, ok := value.GetString(a)
			if !ok {
				return errs.WrongType("join", value.Kind(a), "String"), nil
			}
			out += string(s)
		}
		return value.String(out), nil
	default:
		return errs.WrongTypeOneOf("join", value.Kind(args[0]), "QExpr", "String"), nil
	}
}

// Len implements `len x`: the number of cells (Q-expression) or bytes
// (String), as an Integer.
func Len(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("len", args, 1, 1); errv != nil {
		return errv, nil
	}
	switch a := args[0].(type) {
	case *value.QExpr:
		return value.Integer(a.Len()), nil
	case value.String:
		return value.Integer(len(a)), nil
	default:
		return errs.WrongTypeOneOf("len", value.Kind(a), "QExpr", "String"), nil
	}
}
