package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/jfpedroza/lispy/value"
)

// CLI is the command-line surface of the driver: force-interactive,
// repeatable `-e` strings, positional files, plus the ambient --profile and
// --log-level flags.
type CLI struct {
	Interactive bool     `help:"Force the interactive REPL" name:"interactive" short:"i"`
	Eval        []string `help:"Evaluate a program string" name:"eval" short:"e"`
	Profile     string   `default:""    enum:",cpu,mem" help:"Enable profiling (cpu|mem)" name:"profile"`
	LogLevel    string   `default:"info" enum:"debug,info,warn,error" help:"Diagnostic log level" name:"log-level"`
	Files       []string `arg:"" optional:"" help:"Source files to load" type:"existingfile"`
}

// startProfile starts the profiler before the driver runs and returns a
// func that stops it on exit.
func startProfile(mode string) func() {
	switch mode {
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.Quiet)
		return p.Stop
	case "mem":
		p := profile.Start(profile.MemProfile, profile.Quiet)
		return p.Stop
	default:
		return func() {}
	}
}

// Run parses args, wires a Driver, and runs it to completion, returning the
// process exit code (0 on clean exit, 1 on parse/eval error during
// non-interactive evaluation, else the value of an `exit <int>`).
func Run(args []string) int {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("lispy"), kong.Description(
		"A small Lisp-dialect interpreter."))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		parser.FatalIfErrorf(err)
		return 1
	}

	stopProfile := startProfile(cli.Profile)
	defer stopProfile()

	log := NewLogger(cli.LogLevel)
	d := New(log)

	if err := d.LoadPrelude(); err != nil {
		log.Error("failed to load prelude", "error", err)
		return 1
	}

	for _, src := range cli.Eval {
		result := d.EvalString(src)
		if code, done := terminal(d, result); done {
			return code
		}
	}

	for _, path := range cli.Files {
		result := d.LoadFile(path)
		if code, done := terminal(d, result); done {
			return code
		}
	}

	if cli.Interactive || (len(cli.Eval) == 0 && len(cli.Files) == 0) {
		return d.REPL(os.Stdin)
	}

	return 0
}

// terminal reports whether non-interactive evaluation (an `-e` string or a
// file load) must stop: either an explicit `exit` was raised, or the result
// is an Error.
func terminal(d *Driver, result value.Object) (code int, stop bool) {
	if d.Flags.Exit {
		code := d.Flags.Code
		d.Flags.Reset()
		return code, true
	}
	if errVal, isErr := value.GetError(result); isErr {
		fmt.Fprintln(os.Stderr, strings.TrimSuffix(value.Repr(errVal), "\n"))
		return 1, true
	}
	return 0, false
}
