// Package callable implements the interpreter's three callable kinds
// (Function, Macro, Command) and the partial-application call binder that
// invokes them, supporting curried application: a call with too few
// arguments returns a new partially-applied callable rather than an error.
package callable

import (
	"fmt"
	"io"

	"t73f.de/r/zero/set"

	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// BuiltinFn is a native (Go-implemented) callable body. args holds the
// already-unwrapped cell slice of the caller's SExpr/QExpr.
type BuiltinFn func(env *lenv.Environment, args []value.Object) (value.Object, error)

// Function is an eager (arguments evaluated before call) callable. It is
// either builtin-backed (Builtin set, Formals/Body/Captured nil) or
// user-defined (Formals/Body/Captured set, Builtin nil) — never both.
type Function struct {
	Name     string
	Builtin  BuiltinFn
	Formals  *value.QExpr
	Body     *value.QExpr
	Captured *lenv.Environment
}

// Macro has the same shape as Function but its arguments arrive unevaluated.
type Macro struct {
	Name     string
	Builtin  BuiltinFn
	Formals  *value.QExpr
	Body     *value.QExpr
	Captured *lenv.Environment
}

// Command is always builtin-backed and always receives quoted (zero) args.
type Command struct {
	Name    string
	Builtin BuiltinFn
}

// --- value.Object for Function

func (f *Function) IsNil() bool  { return f == nil }
func (f *Function) IsAtom() bool { return f == nil }
func (f *Function) Clone() value.Object {
	if f == nil {
		return f
	}
	cp := *f
	return &cp
}
func (f *Function) String() string { return value.Repr(f) }
func (f *Function) IsEqual(other value.Object) bool {
	o, ok := other.(*Function)
	if !ok || o == nil || f == nil {
		return ok && o == f
	}
	if f.Builtin != nil || o.Builtin != nil {
		return funcPtrEqual(f.Builtin, o.Builtin)
	}
	return f.Formals.IsEqual(o.Formals) && f.Body.IsEqual(o.Body)
}
func (f *Function) Kind() string { return "Function" }
func (f *Function) Print(w io.Writer) (int, error) {
	if f.Builtin != nil {
		return io.WriteString(w, "<builtin function>")
	}
	return printLambda(w, `\`, f.Formals, f.Body)
}

// --- value.Object for Macro

func (m *Macro) IsNil() bool  { return m == nil }
func (m *Macro) IsAtom() bool { return m == nil }
func (m *Macro) Clone() value.Object {
	if m == nil {
		return m
	}
	cp := *m
	return &cp
}
func (m *Macro) String() string { return value.Repr(m) }
func (m *Macro) IsEqual(other value.Object) bool {
	o, ok := other.(*Macro)
	if !ok || o == nil || m == nil {
		return ok && o == m
	}
	if m.Builtin != nil || o.Builtin != nil {
		return funcPtrEqual(m.Builtin, o.Builtin)
	}
	return m.Formals.IsEqual(o.Formals) && m.Body.IsEqual(o.Body)
}
func (m *Macro) Kind() string { return "Macro" }
func (m *Macro) Print(w io.Writer) (int, error) {
	if m.Builtin != nil {
		return io.WriteString(w, "<builtin function>")
	}
	return printLambda(w, `\!`, m.Formals, m.Body)
}

// --- value.Object for Command

func (c *Command) IsNil() bool         { return c == nil }
func (c *Command) IsAtom() bool        { return c == nil }
func (c *Command) Clone() value.Object { return c }
func (c *Command) String() string      { return value.Repr(c) }
func (c *Command) IsEqual(other value.Object) bool {
	o, ok := other.(*Command)
	return ok && o == c
}
func (c *Command) Print(w io.Writer) (int, error) { return io.WriteString(w, "<command>") }
func (c *Command) Kind() string                   { return "Command" }

func printLambda(w io.Writer, head string, formals, body *value.QExpr) (int, error) {
	length, err := io.WriteString(w, "("+head+" ")
	if err != nil {
		return length, err
	}
	l, err := value.Print(w, formals)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, " ")
	length += l
	if err != nil {
		return length, err
	}
	l, err = value.Print(w, body)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, ")")
	length += l
	return length, err
}

// funcPtrEqual compares two builtins by native function pointer identity:
// two builtins are equal iff they wrap the same native function.
func funcPtrEqual(a, b BuiltinFn) bool {
	return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
}

// GetFunction returns obj as a *Function, if possible.
func GetFunction(obj value.Object) (*Function, bool) {
	f, ok := obj.(*Function)
	return f, ok
}

// GetMacro returns obj as a *Macro, if possible.
func GetMacro(obj value.Object) (*Macro, bool) {
	m, ok := obj.(*Macro)
	return m, ok
}

// GetCommand returns obj as a *Command, if possible.
func GetCommand(obj value.Object) (*Command, bool) {
	c, ok := obj.(*Command)
	return c, ok
}

// NewBuiltinFunction wraps a native Go function as a Function.
func NewBuiltinFunction(name string, fn BuiltinFn) *Function {
	return &Function{Name: name, Builtin: fn}
}

// NewBuiltinMacro wraps a native Go function as a Macro.
func NewBuiltinMacro(name string, fn BuiltinFn) *Macro {
	return &Macro{Name: name, Builtin: fn}
}

// NewBuiltinCommand wraps a native Go function as a Command.
func NewBuiltinCommand(name string, fn BuiltinFn) *Command {
	return &Command{Name: name, Builtin: fn}
}

// ErrDuplicateFormal is returned by NewClosure/NewUserMacro when the formals
// list repeats a symbol name.
type ErrDuplicateFormal struct{ Formals *value.QExpr }

func (e ErrDuplicateFormal) Error() string {
	return fmt.Sprintf("duplicate formal parameter in %v", e.Formals)
}

// checkDistinctFormals validates that, excluding the "&" rest sentinel,
// every formal symbol name is unique, comparing set.New(names...).Length()
// against len(names).
func checkDistinctFormals(formals *value.QExpr) error {
	syms, ok := formals.Symbols()
	if !ok {
		return nil
	}
	names := make([]string, 0, len(syms))
	for _, s := range syms {
		if s.Name() == "&" {
			continue
		}
		names = append(names, s.Name())
	}
	if set.New(names...).Length() != len(names) {
		return ErrDuplicateFormal{Formals: formals}
	}
	return nil
}

// NewClosure builds a user-defined Function from a `\` form.
func NewClosure(formals, body *value.QExpr, captured *lenv.Environment) (*Function, error) {
	if err := checkDistinctFormals(formals); err != nil {
		return nil, err
	}
	return &Function{Formals: formals, Body: body, Captured: captured}, nil
}

// NewUserMacro builds a user-defined Macro from a `\!` form.
func NewUserMacro(formals, body *value.QExpr, captured *lenv.Environment) (*Macro, error) {
	if err := checkDistinctFormals(formals); err != nil {
		return nil, err
	}
	return &Macro{Formals: formals, Body: body, Captured: captured}, nil
}
