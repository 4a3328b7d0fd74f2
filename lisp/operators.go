package lisp

import (
	"math"
)

func builtinAdd(env *LEnv, args []*LVal) (*LVal, error) {
	return arith("add", args[0], args[1],
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) float64 { return a + b })
}

func builtinSub(env *LEnv, args []*LVal) (*LVal, error) {
	return arith("sub", args[0], args[1],
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) float64 { return a - b })
}

func builtinMul(env *LEnv, args []*LVal) (*LVal, error) {
	return arith("mul", args[0], args[1],
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) float64 { return a * b })
}

// builtinDiv always produces a float so that dividing by zero yields an
// infinity instead of an error.
func builtinDiv(env *LEnv, args []*LVal) (*LVal, error) {
	a, b := args[0], args[1]
	if !isNumber(a) || !isNumber(b) {
		return nil, invalidTypes("div", a, b)
	}
	return Float(toFloat(a) / toFloat(b)), nil
}

func builtinMod(env *LEnv, args []*LVal) (*LVal, error) {
	return arith("mod", args[0], args[1],
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, berrf("mod", "division by zero")
			}
			return a % b, nil
		},
		math.Mod)
}

// arith applies an integer operation when both operands are integers and a
// float operation when either operand is a float.
func arith(name string, a, b *LVal, ifn func(a, b int64) (int64, error), ffn func(a, b float64) float64) (*LVal, error) {
	if !isNumber(a) || !isNumber(b) {
		return nil, invalidTypes(name, a, b)
	}
	if a.Type == LInt && b.Type == LInt {
		x, err := ifn(a.Int, b.Int)
		if err != nil {
			return nil, err
		}
		return Int(x), nil
	}
	return Float(ffn(toFloat(a), toFloat(b))), nil
}

func floatFunc(name string, fn func(float64) float64) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		if !isNumber(args[0]) {
			return nil, invalidTypes(name, args[0])
		}
		return Float(fn(toFloat(args[0]))), nil
	}
}

var (
	builtinSqrt = floatFunc("sqrt", math.Sqrt)
	builtinSin  = floatFunc("sin", math.Sin)
	builtinCos  = floatFunc("cos", math.Cos)
	builtinTan  = floatFunc("tan", math.Tan)
)

// roundFunc rounds floats to an integer and leaves integers untouched.
func roundFunc(name string, fn func(float64) float64) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		switch args[0].Type {
		case LInt:
			return args[0], nil
		case LFloat:
			x := fn(args[0].Float)
			// float64(math.MinInt64) is exact, and -float64(math.MinInt64) is
			// the first float beyond math.MaxInt64.
			if math.IsNaN(x) || x < float64(math.MinInt64) || x >= -float64(math.MinInt64) {
				return nil, berrf(name, "cannot convert %v to integer", args[0])
			}
			return Int(int64(x)), nil
		default:
			return nil, invalidTypes(name, args[0])
		}
	}
}

var (
	builtinFloor = roundFunc("floor", math.Floor)
	builtinCeil  = roundFunc("ceil", math.Ceil)
	builtinRound = roundFunc("round", math.Round)
	builtinToInt = roundFunc("int", math.Trunc)
)

func builtinToFloat(env *LEnv, args []*LVal) (*LVal, error) {
	if !isNumber(args[0]) {
		return nil, invalidTypes("float", args[0])
	}
	return Float(toFloat(args[0])), nil
}

func isNumber(v *LVal) bool {
	return v.Type == LInt || v.Type == LFloat
}

func toFloat(v *LVal) float64 {
	if v.Type == LInt {
		return float64(v.Int)
	}
	return v.Float
}

func builtinEq(env *LEnv, args []*LVal) (*LVal, error) {
	eq, err := equal("eq", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return Bool(eq), nil
}

func builtinNe(env *LEnv, args []*LVal) (*LVal, error) {
	eq, err := equal("ne", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return Bool(!eq), nil
}

// equal compares two values of the same kind.  Comparing values of
// different kinds or comparing functions is a type error.
func equal(name string, a, b *LVal) (bool, error) {
	if a.Type != b.Type || a.Type == LLambda {
		return false, invalidTypes(name, a, b)
	}
	return a.Equal(b), nil
}

func builtinLT(env *LEnv, args []*LVal) (*LVal, error) {
	return compare("lt", args[0], args[1], func(c int) bool { return c < 0 })
}

func builtinLEq(env *LEnv, args []*LVal) (*LVal, error) {
	return compare("le", args[0], args[1], func(c int) bool { return c <= 0 })
}

func builtinGT(env *LEnv, args []*LVal) (*LVal, error) {
	return compare("gt", args[0], args[1], func(c int) bool { return c > 0 })
}

func builtinGEq(env *LEnv, args []*LVal) (*LVal, error) {
	return compare("ge", args[0], args[1], func(c int) bool { return c >= 0 })
}

// compare orders numbers, which may be mixed, or two characters.
func compare(name string, a, b *LVal, test func(int) bool) (*LVal, error) {
	switch {
	case a.Type == LInt && b.Type == LInt:
		return Bool(test(cmpInt(a.Int, b.Int))), nil
	case isNumber(a) && isNumber(b):
		return Bool(test(cmpFloat(toFloat(a), toFloat(b)))), nil
	case a.Type == LChar && b.Type == LChar:
		return Bool(test(cmpInt(int64(a.Char), int64(b.Char)))), nil
	default:
		return nil, invalidTypes(name, a, b)
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolOp(name string, fn func(a, b bool) bool) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		a, b := args[0], args[1]
		if a.Type != LBool || b.Type != LBool {
			return nil, invalidTypes(name, a, b)
		}
		return Bool(fn(a.Bool, b.Bool)), nil
	}
}

var (
	builtinAnd = boolOp("and", func(a, b bool) bool { return a && b })
	builtinOr  = boolOp("or", func(a, b bool) bool { return a || b })
	builtinXor = boolOp("xor", func(a, b bool) bool { return a != b })
)

func builtinNot(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LBool {
		return nil, invalidTypes("not", args[0])
	}
	return Bool(!args[0].Bool), nil
}
