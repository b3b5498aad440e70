package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/driver"
	"github.com/jfpedroza/lispy/value"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d := driver.New(nil)
	require.NoError(t, d.LoadPrelude())
	return d
}

func TestLoadPreludeSucceeds(t *testing.T) {
	t.Parallel()
	d := driver.New(nil)
	require.NoError(t, d.LoadPrelude())
}

func TestEvalStringBasicArithmetic(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	result := d.EvalString("(+ 1 2 3)")
	assert.Equal(t, value.Integer(6), result)
}

func TestEvalStringUsesPreludeHelpers(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	result := d.EvalString("(first {1 2 3})")
	assert.Equal(t, value.Integer(1), result)
}

func TestExitRaisesFlag(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	d.EvalString("(exit 7)")
	assert.True(t, d.Flags.Exit)
	assert.Equal(t, 7, d.Flags.Code)
}

func TestProcessPrintsInInteractiveMode(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	d.Flags.Interactive = true
	var out bytes.Buffer
	d.Stdout = &out
	stop := d.Process(value.Integer(42))
	assert.False(t, stop)
	assert.Equal(t, "42\n", out.String())
}

func TestProcessStopsOnExit(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	d.Flags.Exit = true
	d.Flags.Code = 3
	stop := d.Process(value.EmptySExpr())
	assert.True(t, stop)
}

func TestREPLEvaluatesLinesUntilQuit(t *testing.T) {
	t.Parallel()
	d := newDriver(t)
	var out bytes.Buffer
	d.Stdout = &out
	in := strings.NewReader("(+ 1 1)\n(.quit)\n")
	code := d.REPL(in)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "2")
}
