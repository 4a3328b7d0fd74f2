package lisp

import (
	"unicode"
)

func charPredicate(name string, fn func(rune) bool) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		if args[0].Type != LChar {
			return nil, invalidTypes(name, args[0])
		}
		return Bool(fn(args[0].Char)), nil
	}
}

func charMapping(name string, fn func(rune) rune) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		if args[0].Type != LChar {
			return nil, invalidTypes(name, args[0])
		}
		return Char(fn(args[0].Char)), nil
	}
}

var (
	builtinCharNumeric    = charPredicate("ch_numeric", unicode.IsDigit)
	builtinCharAlphabetic = charPredicate("ch_alphabetic", unicode.IsLetter)
	builtinCharUpper      = charPredicate("ch_upper", unicode.IsUpper)
	builtinCharLower      = charPredicate("ch_lower", unicode.IsLower)
	builtinCharWhitespace = charPredicate("ch_whitespace", unicode.IsSpace)
	builtinToUpper        = charMapping("to_upper", unicode.ToUpper)
	builtinToLower        = charMapping("to_lower", unicode.ToLower)
)

func builtinCharval(env *LEnv, args []*LVal) (*LVal, error) {
	if args[0].Type != LChar {
		return nil, invalidTypes("charval", args[0])
	}
	return Int(int64(args[0].Char)), nil
}
