package builtins

import (
	"io"
	"os"

	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/parser"
	"github.com/jfpedroza/lispy/reader"
	"github.com/jfpedroza/lispy/value"
)

// Stdout is where `print`/`show` write. Tests may redirect it.
var Stdout io.Writer = os.Stdout

// Print implements `print v …`: prints each value's canonical printed form,
// space-separated, followed by a newline. Returns the empty S-expression.
func Print(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	for i, a := range args {
		if i > 0 {
			_, _ = io.WriteString(Stdout, " ")
		}
		_, _ = value.Print(Stdout, a)
	}
	_, _ = io.WriteString(Stdout, "\n")
	return value.EmptySExpr(), nil
}

// Show implements `show s …`: every argument must be a String; prints its
// raw (unquoted) contents, space-separated, followed by a newline.
func Show(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	strs := make([]value.String, len(args))
	for i := range args {
		s, errv := GetString("show", args, i)
		if errv != nil {
			return errv, nil
		}
		strs[i] = s
	}
	for i, s := range strs {
		if i > 0 {
			_, _ = io.WriteString(Stdout, " ")
		}
		_, _ = io.WriteString(Stdout, string(s))
	}
	_, _ = io.WriteString(Stdout, "\n")
	return value.EmptySExpr(), nil
}

// Read implements `read s`: parses s via the external parser and returns a
// Q-expression of the top-level forms.
func Read(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("read", args, 1, 1); errv != nil {
		return errv, nil
	}
	s, errv := GetString("read", args, 0)
	if errv != nil {
		return errv, nil
	}
	tree, err := parser.ParseString(string(s), "<string>")
	if err != nil {
		return errs.CouldNotLoadLibrary(err.Error()), nil
	}
	forms := reader.Read(tree)
	sexpr, _ := value.GetSExpr(forms)
	return value.NewQExpr(sexpr.Items...), nil
}

// Load implements `load s`: reads s as a filename, parses it, and evaluates
// every top-level form against env, stopping at the first error.
func Load(env *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("load", args, 1, 1); errv != nil {
		return errv, nil
	}
	path, errv := GetString("load", args, 0)
	if errv != nil {
		return errv, nil
	}
	tree, err := parser.ParseFile(string(path))
	if err != nil {
		return errs.CouldNotLoadLibrary(err.Error()), nil
	}
	forms := reader.Read(tree)
	sexpr, _ := value.GetSExpr(forms)
	for _, form := range sexpr.Items {
		result := eval.Eval(env, form)
		if errVal, isErr := value.GetError(result); isErr {
			return errVal, nil
		}
	}
	return value.EmptySExpr(), nil
}

// MakeError implements `error s`: constructs an Error value from s.
func MakeError(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("error", args, 1, 1); errv != nil {
		return errv, nil
	}
	s, errv := GetString("error", args, 0)
	if errv != nil {
		return errv, nil
	}
	return value.MakeError(string(s)), nil
}

// NewExit builds the `exit x` builtin. x an Integer sets the exit code with
// an empty message; x a String sets exit code 1 with that message. Either
// way it raises flags.Exit, which the driver's result-processor interprets
// to stop the current evaluation loop.
func NewExit(flags *Flags) func(*lenv.Environment, []value.Object) (value.Object, error) {
	return func(_ *lenv.Environment, args []value.Object) (value.Object, error) {
		if errv := CheckArgs("exit", args, 1, 1); errv != nil {
			return errv, nil
		}
		switch x := args[0].(type) {
		case value.Integer:
			flags.Exit = true
			flags.Code = int(x)
			flags.Message = ""
			return value.MakeErrorCode("", int(x)), nil
		case value.String:
			flags.Exit = true
			flags.Code = 1
			flags.Message = string(x)
			return value.MakeErrorCode(string(x), 1), nil
		default:
			return errs.WrongTypeOneOf("exit", value.Kind(x), "Integer", "String"), nil
		}
	}
}
