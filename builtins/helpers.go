// Package builtins implements the native functions, macros, and commands
// that populate a fresh root environment. Argument checking follows a
// CheckArgs/GetSymbol/GetString/GetNumber/GetQExpr helper chain, returning
// the canonical Error values from errs instead of plain Go errors, since
// failures here are in-band result values, not exceptional conditions.
package builtins

import (
	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/value"
)

// CheckArgs validates argument count against [min, max]. max < 0 means
// unbounded.
func CheckArgs(name string, args []value.Object, min, max int) *value.Error {
	n := len(args)
	if n < min {
		return errs.WrongArgCount(name, n, min)
	}
	if max >= 0 && n > max {
		return errs.WrongArgCount(name, n, max)
	}
	return nil
}

// GetSymbol returns args[pos] as a Symbol.
func GetSymbol(name string, args []value.Object, pos int) (value.Symbol, *value.Error) {
	sym, ok := value.GetSymbol(args[pos])
	if !ok {
		return "", errs.WrongType(name, value.Kind(args[pos]), "Symbol")
	}
	return sym, nil
}

// GetString returns args[pos] as a String.
func GetString(name string, args []value.Object, pos int) (value.String, *value.Error) {
	s, ok := value.GetString(args[pos])
	if !ok {
		return "", errs.WrongType(name, value.Kind(args[pos]), "String")
	}
	return s, nil
}

// GetNonEmptyString returns args[pos] as a non-empty String.
func GetNonEmptyString(name string, args []value.Object, pos int) (value.String, *value.Error) {
	s, errv := GetString(name, args, pos)
	if errv != nil {
		return "", errv
	}
	if len(s) == 0 {
		return "", errs.EmptyString(name)
	}
	return s, nil
}

// GetNumber returns args[pos] as a Number.
func GetNumber(name string, args []value.Object, pos int) (value.Number, *value.Error) {
	n, ok := value.GetNumber(args[pos])
	if !ok {
		return nil, errs.WrongType(name, value.Kind(args[pos]), "Number")
	}
	return n, nil
}

// GetQExpr returns args[pos] as a QExpr.
func GetQExpr(name string, args []value.Object, pos int) (*value.QExpr, *value.Error) {
	q, ok := value.GetQExpr(args[pos])
	if !ok {
		return nil, errs.WrongType(name, value.Kind(args[pos]), "QExpr")
	}
	return q, nil
}

// GetNonEmptyQExpr returns args[pos] as a non-empty QExpr.
func GetNonEmptyQExpr(name string, args []value.Object, pos int) (*value.QExpr, *value.Error) {
	q, errv := GetQExpr(name, args, pos)
	if errv != nil {
		return nil, errv
	}
	if q.Len() == 0 {
		return nil, errs.EmptyQExpr(name)
	}
	return q, nil
}
