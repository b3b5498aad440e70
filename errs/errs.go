// Package errs builds the canonical Error values the evaluator and
// builtins report, keeping the wording and argument shapes centralized in
// one catalog.
package errs

import (
	"fmt"
	"strings"

	"github.com/jfpedroza/lispy/value"
)

// BadNumber reports a malformed numeric literal encountered by the reader.
func BadNumber() *value.Error { return value.MakeError("Invalid number!") }

// UnboundSymbol reports a lookup that found no binding anywhere in the
// environment chain.
func UnboundSymbol(name string) *value.Error {
	return value.MakeError(fmt.Sprintf("Unbound symbol '%s'!", name))
}

// DivisionByZero reports `/` or `%` by zero.
func DivisionByZero() *value.Error { return value.MakeError("Division by zero!") }

// IntegerModuleOnly reports `%` applied to a non-Integer operand.
func IntegerModuleOnly() *value.Error {
	return value.MakeError("Module operation can only be applied to integers!")
}

// SExprNotFunction reports an S-expression head that resolved to a
// non-callable, non-Error value.
func SExprNotFunction(got string) *value.Error {
	return value.MakeError(fmt.Sprintf("S-expression does not start with function!. Got %s.", got))
}

// WrongArgCount reports a named builtin/function called with the wrong
// number of arguments.
func WrongArgCount(name string, got, expected int) *value.Error {
	return value.MakeError(fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, got, expected))
}

// TooManyArgs reports a partial-application call that supplied more
// arguments than the callable has formals left to consume.
func TooManyArgs(name string, got, expected int) *value.Error {
	return value.MakeError(fmt.Sprintf(
		"Function passed too many arguments. Got %d, Expected %d.", got, expected))
}

// WrongType reports a single expected type.
func WrongType(name, got, expected string) *value.Error {
	return value.MakeError(fmt.Sprintf(
		"Function '%s' passed incorrect type. Got %s, Expected %s.", name, got, expected))
}

// WrongTypeOneOf reports a choice of acceptable types.
func WrongTypeOneOf(name, got string, expected ...string) *value.Error {
	return value.MakeError(fmt.Sprintf(
		"Function '%s' passed incorrect type. Got %s, Expected one of %s.", name, got, strings.Join(expected, ", ")))
}

// EmptyQExpr reports a builtin that requires a non-empty Q-expression.
func EmptyQExpr(name string) *value.Error {
	return value.MakeError(fmt.Sprintf("Function '%s' passed {}!", name))
}

// EmptyString reports a builtin that requires a non-empty string.
func EmptyString(name string) *value.Error {
	return value.MakeError(fmt.Sprintf("Function '%s' passed empty string!", name))
}

// CannotDefineNonSymbol reports `def`/`=` given a non-Symbol in its binding list.
func CannotDefineNonSymbol(name, got string) *value.Error {
	return value.MakeError(fmt.Sprintf("Function '%s' cannot define non-symbol!. Got %s.", name, got))
}

// CannotDefineMismatchedValues reports `def`/`=` given value-list and
// symbol-list arities that disagree.
func CannotDefineMismatchedValues(name string) *value.Error {
	return value.MakeError(fmt.Sprintf("Function '%s' cannot define incorrect number of values to symbols", name))
}

// FormatInvalid reports a formals list where "&" is not followed by exactly
// one trailing symbol.
func FormatInvalid() *value.Error {
	return value.MakeError("Function format invalid. Symbol '&' not followed by single symbol.")
}

// CouldNotLoadLibrary reports a failure to parse source text or a file
// (`read`, `load`, and the driver's eval-string and load-file paths). The
// misspelling ("Cound") is preserved from the canonical message.
func CouldNotLoadLibrary(text string) *value.Error {
	return value.MakeError(fmt.Sprintf("Cound not load library %s", text))
}
