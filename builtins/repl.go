package builtins

import (
	"fmt"
	"io"

	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// NewClear builds the `.clear` command: raises flags.ClearOutput, which the
// driver's result-processor interprets by clearing the screen.
func NewClear(flags *Flags) func(*lenv.Environment, []value.Object) (value.Object, error) {
	return func(_ *lenv.Environment, args []value.Object) (value.Object, error) {
		if errv := CheckArgs(".clear", args, 0, 0); errv != nil {
			return errv, nil
		}
		flags.ClearOutput = true
		return value.EmptySExpr(), nil
	}
}

// NewQuit builds the `.quit` command: raises flags.Exit with code 0.
func NewQuit(flags *Flags) func(*lenv.Environment, []value.Object) (value.Object, error) {
	return func(_ *lenv.Environment, args []value.Object) (value.Object, error) {
		if errv := CheckArgs(".quit", args, 0, 0); errv != nil {
			return errv, nil
		}
		flags.Exit = true
		flags.Code = 0
		return value.EmptySExpr(), nil
	}
}

// NewPrintEnv builds the `.printenv` command: prints every binding in the
// current environment frame to w.
func NewPrintEnv(w io.Writer) func(*lenv.Environment, []value.Object) (value.Object, error) {
	return func(env *lenv.Environment, args []value.Object) (value.Object, error) {
		if errv := CheckArgs(".printenv", args, 0, 0); errv != nil {
			return errv, nil
		}
		for _, name := range env.Keys() {
			v := env.Bindings()[name]
			fmt.Fprintf(w, "%s: %s\n", name, value.Repr(v))
		}
		return value.EmptySExpr(), nil
	}
}
