package builtins

import (
	"io"

	"github.com/jfpedroza/lispy/callable"
	"github.com/jfpedroza/lispy/lenv"
)

// Register installs the initial population of a fresh root environment: the
// variable-binding and closure-building macros, arithmetic and comparison
// functions, list/string functions, and I/O/reflection functions. flags is
// threaded through to the builtins (`exit`) that need to signal driver
// state.
func Register(env *lenv.Environment, flags *Flags) {
	addMacro := func(name string, fn callable.BuiltinFn) {
		env.Put(name, callable.NewBuiltinMacro(name, fn))
	}
	addFunc := func(name string, fn callable.BuiltinFn) {
		env.Put(name, callable.NewBuiltinFunction(name, fn))
	}

	// Variable binding and closure construction (macros: args arrive quoted).
	addMacro("def", Def)
	addMacro("=", Put)
	addMacro(`\`, Lambda)
	addMacro(`\!`, LambdaMacro)

	// Arithmetic.
	addFunc("+", Add)
	addFunc("-", Sub)
	addFunc("*", Mul)
	addFunc("/", Div)
	addFunc("%", Mod)
	addFunc("^", Pow)
	addFunc("min", Min)
	addFunc("max", Max)

	// Comparison.
	addFunc("==", Eq)
	addFunc("!=", Neq)
	addFunc(">", Gt)
	addFunc("<", Lt)
	addFunc(">=", Ge)
	addFunc("<=", Le)
	addFunc("if", If)

	// List/string.
	addFunc("list", List)
	addFunc("eval", Eval)
	addFunc("head", Head)
	addFunc("tail", Tail)
	addFunc("init", Init)
	addFunc("cons", Cons)
	addFunc("join", Join)
	addFunc("len", Len)

	// I/O and reflection.
	addFunc("print", Print)
	addFunc("show", Show)
	addFunc("read", Read)
	addFunc("load", Load)
	addFunc("error", MakeError)
	addFunc("exit", NewExit(flags))
}

// RegisterREPLCommands installs the REPL-only commands, used
// only in interactive mode.
func RegisterREPLCommands(env *lenv.Environment, flags *Flags, out io.Writer) {
	addCommand := func(name string, fn callable.BuiltinFn) {
		env.Put(name, callable.NewBuiltinCommand(name, fn))
	}
	addCommand(".clear", NewClear(flags))
	addCommand(".quit", NewQuit(flags))
	addCommand(".printenv", NewPrintEnv(out))
}
