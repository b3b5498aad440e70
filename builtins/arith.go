package builtins

import (
	"math"

	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/lenv"
	"github.com/jfpedroza/lispy/value"
)

// numbers extracts every argument as a Number, or the first type error.
func numbers(name string, args []value.Object) ([]value.Number, *value.Error) {
	out := make([]value.Number, len(args))
	for i := range args {
		n, errv := GetNumber(name, args, i)
		if errv != nil {
			return nil, errv
		}
		out[i] = n
	}
	return out, nil
}

func reduceArith(name string, args []value.Object, op func(x, y value.Number) value.Number) (value.Object, error) {
	if errv := CheckArgs(name, args, 1, -1); errv != nil {
		return errv, nil
	}
	nums, errv := numbers(name, args)
	if errv != nil {
		return errv, nil
	}
	if name == "-" && len(nums) == 1 {
		return value.NumNeg(nums[0]), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = op(acc, n)
	}
	return acc, nil
}

// Add implements `+`.
func Add(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return reduceArith("+", args, value.NumAdd)
}

// Sub implements `-`.
func Sub(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return reduceArith("-", args, value.NumSub)
}

// Mul implements `*`.
func Mul(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	return reduceArith("*", args, value.NumMul)
}

// Div implements `/`.
func Div(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("/", args, 1, -1); errv != nil {
		return errv, nil
	}
	nums, errv := numbers("/", args)
	if errv != nil {
		return errv, nil
	}
	if len(nums) == 1 {
		acc, err := value.NumDiv(value.Integer(1), nums[0])
		if err != nil {
			return errs.DivisionByZero(), nil
		}
		return acc, nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		var err error
		acc, err = value.NumDiv(acc, n)
		if err != nil {
			return errs.DivisionByZero(), nil
		}
	}
	return acc, nil
}

// Mod implements `%`, integer pairs only.
func Mod(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("%", args, 1, -1); errv != nil {
		return errv, nil
	}
	ints := make([]value.Integer, len(args))
	for i, a := range args {
		n, ok := value.GetNumber(a)
		if !ok {
			return errs.WrongType("%", value.Kind(a), "Number"), nil
		}
		iv, ok := n.(value.Integer)
		if !ok {
			return errs.IntegerModuleOnly(), nil
		}
		ints[i] = iv
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		result, err := value.NumMod(acc, n)
		if err != nil {
			return errs.DivisionByZero(), nil
		}
		acc = result.(value.Integer)
	}
	return acc, nil
}

// Pow implements `^`, using IEEE pow and truncating integer^integer results.
func Pow(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("^", args, 1, -1); errv != nil {
		return errv, nil
	}
	nums, errv := numbers("^", args)
	if errv != nil {
		return errv, nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = value.NumPow(acc, n, math.Pow)
	}
	return acc, nil
}

// Min implements `min`: returns the smallest operand, ties to the left.
func Min(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("min", args, 1, -1); errv != nil {
		return errv, nil
	}
	nums, errv := numbers("min", args)
	if errv != nil {
		return errv, nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if value.NumCmp(n, acc) < 0 {
			acc = n
		}
	}
	return acc, nil
}

// Max implements `max`: returns the largest operand, ties to the left.
func Max(_ *lenv.Environment, args []value.Object) (value.Object, error) {
	if errv := CheckArgs("max", args, 1, -1); errv != nil {
		return errv, nil
	}
	nums, errv := numbers("max", args)
	if errv != nil {
		return errv, nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if value.NumCmp(n, acc) > 0 {
			acc = n
		}
	}
	return acc, nil
}
