package lisp

import (
	"strings"
)

// LBuiltin is the implementation of a builtin operator or function.
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

// langBuiltin describes an entry in the builtin table.  The operands of a
// special operator are passed unevaluated and the operator checks their
// count itself.  The operands of a function are evaluated left to right
// before fn is called.
type langBuiltin struct {
	name     string
	formals  []string
	variadic bool
	special  bool
	fn       LBuiltin
}

func (fun *langBuiltin) String() string {
	return fun.name + " (" + strings.Join(fun.formals, " ") + ")"
}

// Builtins returns the names of all builtin operators and functions in the
// order they were defined.  Aliases are not included.
func Builtins() []string {
	names := make([]string, 0, len(langSpecialOps)+len(langBuiltins))
	for _, b := range langSpecialOps {
		names = append(names, b.name)
	}
	for _, b := range langBuiltins {
		names = append(names, b.name)
	}
	return names
}

// IsBuiltin returns true if name refers to a builtin, including aliases.
func IsBuiltin(name string) bool {
	_, ok := lookupBuiltin(name)
	return ok
}

var builtinAliases = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"=":  "eq",
	"%":  "map",
	"\\": "fold",
	"_":  "filter",
	"..": "count",
	"$":  "set",
}

var builtinTable map[string]*langBuiltin

func init() {
	builtinTable = make(map[string]*langBuiltin, len(langSpecialOps)+len(langBuiltins)+len(builtinAliases))
	for _, ops := range [][]*langBuiltin{langSpecialOps, langBuiltins} {
		for _, b := range ops {
			if _, ok := builtinTable[b.name]; ok {
				panic("duplicate builtin: " + b.name)
			}
			builtinTable[b.name] = b
		}
	}
	for alias, name := range builtinAliases {
		b, ok := builtinTable[name]
		if !ok {
			panic("alias for unknown builtin: " + name)
		}
		builtinTable[alias] = b
	}
}

func lookupBuiltin(name string) (*langBuiltin, bool) {
	b, ok := builtinTable[name]
	return b, ok
}

func (env *LEnv) callBuiltin(fun *langBuiltin, args []*LVal) (*LVal, error) {
	if fun.special {
		return fun.fn(env, args)
	}
	n := len(fun.formals)
	if err := checkArity(fun.name, n, len(args), fun.variadic); err != nil {
		return nil, err
	}
	vals, err := env.resolveAll(args)
	if err != nil {
		return nil, addTrace(err, fun.name)
	}
	if len(vals) < n {
		return builtinRef(fun).bind(vals), nil
	}
	return fun.fn(env, vals)
}

var langBuiltins = []*langBuiltin{
	// math
	{name: "add", formals: []string{"a", "b"}, fn: builtinAdd},
	{name: "sub", formals: []string{"a", "b"}, fn: builtinSub},
	{name: "mul", formals: []string{"a", "b"}, fn: builtinMul},
	{name: "div", formals: []string{"a", "b"}, fn: builtinDiv},
	{name: "mod", formals: []string{"a", "b"}, fn: builtinMod},
	{name: "sqrt", formals: []string{"x"}, fn: builtinSqrt},
	{name: "sin", formals: []string{"x"}, fn: builtinSin},
	{name: "cos", formals: []string{"x"}, fn: builtinCos},
	{name: "tan", formals: []string{"x"}, fn: builtinTan},
	{name: "floor", formals: []string{"x"}, fn: builtinFloor},
	{name: "ceil", formals: []string{"x"}, fn: builtinCeil},
	{name: "round", formals: []string{"x"}, fn: builtinRound},
	{name: "float", formals: []string{"x"}, fn: builtinToFloat},
	{name: "int", formals: []string{"x"}, fn: builtinToInt},

	// comparison and boolean logic
	{name: "eq", formals: []string{"a", "b"}, fn: builtinEq},
	{name: "ne", formals: []string{"a", "b"}, fn: builtinNe},
	{name: "lt", formals: []string{"a", "b"}, fn: builtinLT},
	{name: "le", formals: []string{"a", "b"}, fn: builtinLEq},
	{name: "gt", formals: []string{"a", "b"}, fn: builtinGT},
	{name: "ge", formals: []string{"a", "b"}, fn: builtinGEq},
	{name: "and", formals: []string{"a", "b"}, fn: builtinAnd},
	{name: "or", formals: []string{"a", "b"}, fn: builtinOr},
	{name: "xor", formals: []string{"a", "b"}, fn: builtinXor},
	{name: "not", formals: []string{"a"}, fn: builtinNot},

	// lists
	{name: "first", formals: []string{"list"}, fn: builtinFirst},
	{name: "last", formals: []string{"list"}, fn: builtinLast},
	{name: "init", formals: []string{"list"}, fn: builtinInit},
	{name: "tail", formals: []string{"list"}, fn: builtinTail},
	{name: "len", formals: []string{"list"}, fn: builtinLen},
	{name: "nth", formals: []string{"index", "list"}, fn: builtinNth},
	{name: "cons", formals: []string{"value", "list"}, fn: builtinCons},
	{name: "append", formals: []string{"a", "b"}, fn: builtinAppend},
	{name: "rev", formals: []string{"list"}, fn: builtinRev},
	{name: "unique", formals: []string{"list"}, fn: builtinUnique},
	{name: "sort", formals: []string{"list"}, variadic: true, fn: builtinSort},
	{name: "contains", formals: []string{"list", "value"}, fn: builtinContains},
	{name: "find", formals: []string{"list", "value"}, fn: builtinFind},
	{name: "split_at", formals: []string{"index", "list"}, fn: builtinSplitAt},
	{name: "combine", formals: []string{"lists"}, fn: builtinCombine},
	{name: "intersect", formals: []string{"a", "b"}, fn: builtinIntersect},
	{name: "zip", formals: []string{"a", "b"}, fn: builtinZip},
	{name: "count", formals: []string{"min", "max"}, fn: builtinCount},

	// higher order functions
	{name: "map", formals: []string{"fn", "list"}, fn: builtinMap},
	{name: "fold", formals: []string{"init", "fn", "list"}, fn: builtinFold},
	{name: "expand", formals: []string{"init", "fn", "list"}, fn: builtinExpand},
	{name: "filter", formals: []string{"fn", "list"}, fn: builtinFilter},
	{name: "any", formals: []string{"fn", "list"}, fn: builtinAny},
	{name: "all", formals: []string{"fn", "list"}, fn: builtinAll},

	// characters
	{name: "ch_numeric", formals: []string{"char"}, fn: builtinCharNumeric},
	{name: "ch_alphabetic", formals: []string{"char"}, fn: builtinCharAlphabetic},
	{name: "ch_upper", formals: []string{"char"}, fn: builtinCharUpper},
	{name: "ch_lower", formals: []string{"char"}, fn: builtinCharLower},
	{name: "ch_whitespace", formals: []string{"char"}, fn: builtinCharWhitespace},
	{name: "to_upper", formals: []string{"char"}, fn: builtinToUpper},
	{name: "to_lower", formals: []string{"char"}, fn: builtinToLower},
	{name: "charval", formals: []string{"char"}, fn: builtinCharval},

	// program control
	{name: "set", formals: []string{"name", "value"}, fn: builtinSet},
	{name: "global", formals: []string{"name", "value"}, fn: builtinGlobal},
	{name: "seq", formals: []string{"expr"}, variadic: true, fn: builtinSeq},
	{name: "eval", formals: []string{"expr"}, fn: builtinEval},
	{name: "throw", formals: []string{"message"}, fn: builtinThrow},
	{name: "type", formals: []string{"value"}, fn: builtinType},
	{name: "format", formals: []string{"template"}, variadic: true, fn: builtinFormat},
	{name: "print", formals: []string{"value"}, fn: builtinPrint},
	{name: "printfmt", formals: []string{"value"}, fn: builtinPrintFmt},
	{name: "puts", formals: []string{"string"}, fn: builtinPuts},
	{name: "putsln", formals: []string{"string"}, fn: builtinPutsln},
	{name: "spawn", formals: []string{"program"}, variadic: true, fn: builtinSpawn},
}
