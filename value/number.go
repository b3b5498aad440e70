package value

import (
	"errors"
	"strconv"
)

// Number spans Integer and Decimal: it is the operand type of the arithmetic
// helpers, and error messages name it "Number" rather than pick one kind.
type Number interface {
	Object
	// Float64 returns the number widened to a double, for promotion.
	Float64() float64
	// IsZero reports whether the number is the zero value of its kind.
	IsZero() bool
}

// Integer is a 64-bit signed integer literal.
type Integer int64

func (i Integer) IsNil() bool      { return false }
func (i Integer) IsAtom() bool     { return true }
func (i Integer) Clone() Object    { return i }
func (i Integer) Float64() float64 { return float64(i) }
func (i Integer) IsZero() bool     { return i == 0 }
func (i Integer) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Integer) IsEqual(other Object) bool {
	switch o := other.(type) {
	case Integer:
		return i == o
	case Decimal:
		return float64(i) == float64(o)
	default:
		return false
	}
}

// Decimal is an IEEE 754 double literal.
type Decimal float64

func (d Decimal) IsNil() bool      { return false }
func (d Decimal) IsAtom() bool     { return true }
func (d Decimal) Clone() Object    { return d }
func (d Decimal) Float64() float64 { return float64(d) }
func (d Decimal) IsZero() bool     { return float64(d) == 0 }
func (d Decimal) String() string   { return strconv.FormatFloat(float64(d), 'g', -1, 64) }
func (d Decimal) IsEqual(other Object) bool {
	switch o := other.(type) {
	case Decimal:
		return d == o
	case Integer:
		return float64(d) == float64(o)
	default:
		return false
	}
}

// GetNumber returns obj as a Number, if possible.
func GetNumber(obj Object) (Number, bool) {
	if IsNil(obj) {
		return nil, false
	}
	num, ok := obj.(Number)
	return num, ok
}

// ErrDivisionByZero is returned by NumDiv/NumMod when dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// IsDecimal reports whether either operand is a Decimal, in which case
// arithmetic promotes to Decimal.
func IsDecimal(x, y Number) bool {
	_, xd := x.(Decimal)
	_, yd := y.(Decimal)
	return xd || yd
}

func asInts(x, y Number) (int64, int64, bool) {
	xi, xok := x.(Integer)
	yi, yok := y.(Integer)
	return int64(xi), int64(yi), xok && yok
}

// NumNeg negates x, preserving its kind.
func NumNeg(x Number) Number {
	if xi, ok := x.(Integer); ok {
		return -xi
	}
	return Decimal(-x.Float64())
}

// NumAdd adds x and y, promoting to Decimal if either operand is Decimal.
func NumAdd(x, y Number) Number {
	if xi, yi, ok := asInts(x, y); ok {
		return Integer(xi + yi)
	}
	return Decimal(x.Float64() + y.Float64())
}

// NumSub subtracts y from x, promoting to Decimal if either operand is Decimal.
func NumSub(x, y Number) Number {
	if xi, yi, ok := asInts(x, y); ok {
		return Integer(xi - yi)
	}
	return Decimal(x.Float64() - y.Float64())
}

// NumMul multiplies x and y, promoting to Decimal if either operand is Decimal.
func NumMul(x, y Number) Number {
	if xi, yi, ok := asInts(x, y); ok {
		return Integer(xi * yi)
	}
	return Decimal(x.Float64() * y.Float64())
}

// NumDiv divides x by y, promoting to Decimal if either operand is Decimal.
func NumDiv(x, y Number) (Number, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	if xi, yi, ok := asInts(x, y); ok {
		return Integer(xi / yi), nil
	}
	return Decimal(x.Float64() / y.Float64()), nil
}

// NumMod computes x modulo y. Both operands must be Integer; callers check
// this ahead of time since the error message differs from the generic
// type-error message.
func NumMod(x, y Integer) (Number, error) {
	if y == 0 {
		return nil, ErrDivisionByZero
	}
	return x % y, nil
}

// NumPow raises x to the power y using IEEE pow, truncating to Integer when
// both operands are Integer.
func NumPow(x, y Number, powFn func(float64, float64) float64) Number {
	result := powFn(x.Float64(), y.Float64())
	if _, xi := x.(Integer); xi {
		if _, yi := y.(Integer); yi {
			return Integer(int64(result))
		}
	}
	return Decimal(result)
}

// NumCmp compares x and y, returning <0, 0, >0 as x compares to y.
func NumCmp(x, y Number) int {
	xf, yf := x.Float64(), y.Float64()
	switch {
	case xf < yf:
		return -1
	case xf > yf:
		return 1
	default:
		return 0
	}
}
