// Package value defines the tagged sum of runtime forms used throughout the
// interpreter: the homogeneous Value that is simultaneously data and code.
package value

import (
	"fmt"
	"io"
	"strings"
)

// Object is the value all forms in the interpreter must satisfy. It mirrors
// the minimal object protocol used throughout the interpreter's value model:
// identity (IsNil/IsAtom), structural comparison (IsEqual), and printing.
type Object interface {
	fmt.Stringer

	// IsNil reports whether the concrete object denotes the empty value.
	IsNil() bool

	// IsAtom reports whether the object is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for structural equality.
	IsEqual(Object) bool

	// Clone returns an owned, independent copy of the object. Since the
	// value graph is a tree (no value is referenced from two places at
	// once), every environment lookup and every callable binding hands
	// out a Clone rather than the stored value itself.
	Clone() Object
}

// IsNil reports whether obj is nil or denotes the empty value.
func IsNil(obj Object) bool { return obj == nil || obj.IsNil() }

// Printable is an Object with a representation that differs from String().
type Printable interface {
	Print(io.Writer) (int, error)
}

// Kinder is an Object that names its own tag for diagnostics, letting
// packages outside value (e.g. callable's Function/Macro/Command) plug
// into Kind without value needing to import them.
type Kinder interface {
	Kind() string
}

// Print writes the canonical representation of obj to w.
func Print(w io.Writer, obj Object) (int, error) {
	if q, ok := obj.(*QExpr); ok {
		return q.Print(w)
	}
	if IsNil(obj) {
		return io.WriteString(w, "()")
	}
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// Repr renders obj's canonical printed form as a string. It is used
// everywhere a Value needs to appear inside another Value's own Print
// (error messages, nested cells, closures echoing their body).
func Repr(obj Object) string {
	var sb strings.Builder
	_, _ = Print(&sb, obj)
	return sb.String()
}

// Kind names the tag of a Value for diagnostics, matching the
// auxiliary "tag" vocabulary from the error catalog (e.g. "S-expression
// does not start with function!. Got <type>.").
func Kind(obj Object) string {
	if obj == nil {
		return "QExpr"
	}
	if k, ok := obj.(Kinder); ok {
		return k.Kind()
	}
	switch obj.(type) {
	case Integer, Decimal:
		return "Number"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case CName:
		return "CName"
	case *Error:
		return "Error"
	case *SExpr:
		return "SExpr"
	case *QExpr:
		return "QExpr"
	default:
		return fmt.Sprintf("%T", obj)
	}
}
