package callable

import (
	"fmt"

	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// EvalQExpr runs a callable's body in its captured environment. The eval
// package supplies the real implementation (eval_qexpr); it is threaded
// through as a parameter rather than imported directly so this package does
// not import eval, which itself must import callable to dispatch on
// Function/Macro/Command.
type EvalQExpr func(env *lenv.Environment, body *value.QExpr) value.Object

// Call invokes f with args (already evaluated), per the partial-application
// binder. args holds the caller's argument cells.
func (f *Function) Call(env *lenv.Environment, args []value.Object, evalBody EvalQExpr) (value.Object, error) {
	if f.Builtin != nil {
		return f.Builtin(env, args)
	}
	return bind(f.Name, false, f.Formals, f.Body, f.Captured, env, args, evalBody,
		func(formals, body *value.QExpr, captured *lenv.Environment) value.Object {
			return &Function{Name: f.Name, Formals: formals, Body: body, Captured: captured}
		})
}

// Call invokes m with args (unevaluated), per the partial-application binder.
func (m *Macro) Call(env *lenv.Environment, args []value.Object, evalBody EvalQExpr) (value.Object, error) {
	if m.Builtin != nil {
		return m.Builtin(env, args)
	}
	return bind(m.Name, true, m.Formals, m.Body, m.Captured, env, args, evalBody,
		func(formals, body *value.QExpr, captured *lenv.Environment) value.Object {
			return &Macro{Name: m.Name, Formals: formals, Body: body, Captured: captured}
		})
}

// Call invokes c, always with zero arguments.
func (c *Command) Call(env *lenv.Environment, _ []value.Object) (value.Object, error) {
	return c.Builtin(env, nil)
}

// bind implements the shared partial-application algorithm used by both
// Function and Macro. isMacro controls whether consumed arguments are
// wrapped in a one-element QExpr before being bound (macros see unevaluated,
// quoted arguments).
func bind(
	name string,
	isMacro bool,
	formals, body *value.QExpr,
	captured *lenv.Environment,
	callerEnv *lenv.Environment,
	args []value.Object,
	evalBody EvalQExpr,
	rebuild func(formals, body *value.QExpr, captured *lenv.Environment) value.Object,
) (value.Object, error) {
	remainingFormals := &value.QExpr{Items: append([]value.Object(nil), formals.Items...)}
	env := captured.Clone()
	total := len(args)

	for len(args) > 0 {
		if remainingFormals.Len() == 0 {
			return errs.TooManyArgs(name, total, countFormals(formals)), nil
		}
		s, ok := value.GetSymbol(remainingFormals.PopFirst())
		if !ok {
			return nil, fmt.Errorf("non-symbol formal for %s", name)
		}

		if s.Name() == "&" {
			if remainingFormals.Len() != 1 {
				return errs.FormatInvalid(), nil
			}
			rest, _ := value.GetSymbol(remainingFormals.PopFirst())
			gathered := value.EmptyQExpr()
			for _, a := range args {
				if isMacro {
					gathered.Append(&value.QExpr{Items: []value.Object{a}})
				} else {
					gathered.Append(a)
				}
			}
			env.Put(rest.Name(), gathered)
			args = nil
			break
		}

		a := args[0]
		args = args[1:]
		if isMacro {
			env.Put(s.Name(), &value.QExpr{Items: []value.Object{a}})
		} else {
			env.Put(s.Name(), a)
		}
	}

	if remainingFormals.Len() > 0 {
		if first, ok := value.GetSymbol(remainingFormals.Items[0]); ok && first.Name() == "&" {
			if remainingFormals.Len() == 2 {
				trailing, _ := value.GetSymbol(remainingFormals.Items[1])
				env.Put(trailing.Name(), value.EmptyQExpr())
				remainingFormals = value.EmptyQExpr()
			} else {
				return errs.FormatInvalid(), nil
			}
		}
	}

	if remainingFormals.Len() == 0 {
		env.SetParent(callerEnv)
		return evalBody(env, body.Clone().(*value.QExpr)), nil
	}

	return rebuild(remainingFormals, body, env), nil
}

func countFormals(formals *value.QExpr) int {
	n := 0
	for _, it := range formals.Items {
		if s, ok := value.GetSymbol(it); ok && s.Name() == "&" {
			continue
		}
		n++
	}
	return n
}
