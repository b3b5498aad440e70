// Package driver implements the interpreter's entry points: prelude load,
// eval-string, load-file, and the interactive loop, wiring the reader,
// evaluator, and builtins into a running REPL.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jfpedroza/lispy/builtins"
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/eval"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/parser"
	"github.com/jfpedroza/lispy/reader"
	"github.com/jfpedroza/lispy/value"
)

// Driver holds the interpreter's long-lived state: the root environment and
// the bit-flag set builtins/commands communicate through.
type Driver struct {
	Env    *lenv.Environment
	Flags  *builtins.Flags
	Log    *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New builds a Driver with a fresh root environment populated by the
// builtins table, installed fresh at startup.
func New(log *slog.Logger) *Driver {
	env := lenv.NewRoot()
	flags := &builtins.Flags{}
	builtins.Register(env, flags)
	return &Driver{Env: env, Flags: flags, Log: log, Stdout: os.Stdout, Stderr: os.Stderr}
}

// LoadPrelude evaluates the embedded prelude against the root environment,
// returning the first error encountered, if any.
func (d *Driver) LoadPrelude() error {
	forms, err := d.parseForms(prelude, "<prelude>")
	if err != nil {
		return err
	}
	for _, form := range forms {
		result := eval.Eval(d.Env, form)
		if errVal, isErr := value.GetError(result); isErr {
			return fmt.Errorf("prelude: %s", errVal.Message)
		}
	}
	return nil
}

// EvalString parses and evaluates every top-level form in src against the
// root environment, returning the last result. It stops early (returning
// that result) the moment an Error is observed or flags.Exit is raised,
// matching the driver's FAIL_ON_ERROR behavior during `-e` evaluation
func (d *Driver) EvalString(src string) value.Object {
	forms, err := d.parseForms(src, "<input>")
	if err != nil {
		return errs.CouldNotLoadLibrary(err.Error())
	}
	var last value.Object = value.EmptySExpr()
	for _, form := range forms {
		last = eval.Eval(d.Env, form)
		if _, isErr := value.GetError(last); isErr {
			return last
		}
		if d.Flags.Exit {
			return last
		}
	}
	return last
}

// LoadFile reads path, parses it, and evaluates every top-level form,
// stopping at the first error, before the environment even has a running
// REPL.
func (d *Driver) LoadFile(path string) value.Object {
	tree, err := parser.ParseFile(path)
	if err != nil {
		return errs.CouldNotLoadLibrary(err.Error())
	}
	forms := formsOf(reader.Read(tree))
	var last value.Object = value.EmptySExpr()
	for _, form := range forms {
		last = eval.Eval(d.Env, form)
		if _, isErr := value.GetError(last); isErr {
			return last
		}
		if d.Flags.Exit {
			return last
		}
	}
	return last
}

func (d *Driver) parseForms(src, name string) ([]value.Object, error) {
	tree, err := parser.ParseString(src, name)
	if err != nil {
		return nil, err
	}
	return formsOf(reader.Read(tree)), nil
}

func formsOf(v value.Object) []value.Object {
	s, ok := value.GetSExpr(v)
	if !ok {
		return nil
	}
	return s.Items
}

// InstallREPLCommands installs the REPL-only commands (.clear/.printenv/
// .quit), used only in interactive mode.
func (d *Driver) InstallREPLCommands() {
	d.Flags.Interactive = true
	builtins.RegisterREPLCommands(d.Env, d.Flags, d.Stdout)
}

// Process is the driver's result-processor: it interprets the
// flags a top-level evaluation may have raised, returning true when the
// driver loop should stop.
func (d *Driver) Process(result value.Object) (stop bool) {
	if d.Flags.ClearOutput {
		clearScreen(d.Stdout)
		d.Flags.ClearOutput = false
		return false
	}
	if d.Flags.Exit {
		// The caller (REPL/CLI) reads flags.Code/flags.Message before the
		// next evaluation; leave them set rather than resetting here.
		return true
	}
	_, isErr := value.GetError(result)
	if d.Flags.Interactive {
		value.Print(d.Stdout, result)
		_, _ = io.WriteString(d.Stdout, "\n")
	} else if isErr {
		value.Print(d.Stderr, result)
		_, _ = io.WriteString(d.Stderr, "\n")
	}
	return false
}

func clearScreen(w io.Writer) {
	_, _ = io.WriteString(w, "\x1b[H\x1b[2J")
}

// REPL reads lines from in, evaluating each against the root environment
// until EOF, `.quit`, or `exit` is invoked. It returns the driver's final
// exit code.
func (d *Driver) REPL(in io.Reader) int {
	d.InstallREPLCommands()
	scanner := bufio.NewScanner(in)
	for {
		_, _ = io.WriteString(d.Stdout, "lispy> ")
		if !scanner.Scan() {
			return 0
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result := d.EvalString(line)
		if d.Process(result) {
			return d.Flags.Code
		}
	}
}
