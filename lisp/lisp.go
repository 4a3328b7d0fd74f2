package lisp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNil
	LBool
	LInt
	LFloat
	LChar
	LSymbol
	LList
	LLambda
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LBool:    "boolean",
	LInt:     "integer",
	LFloat:   "float",
	LChar:    "char",
	LSymbol:  "symbol",
	LList:    "list",
	LLambda:  "lambda",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value.
//
// An LVal is never modified after it has been constructed.  Builtins that
// derive a new list or function from their arguments allocate a new LVal so
// values can be shared freely between scopes.
type LVal struct {
	Type  LValType
	Int   int64
	Float float64
	Bool  bool
	Char  rune
	Str   string // symbol name
	Cells []*LVal

	// Variables needed for function values
	Formals []string // all parameter names, bound or not
	Bound   []*LVal  // arguments supplied by partial application
	Body    *LVal
	Builtin string // name of the referenced builtin function, if any
}

// Nil returns an LVal representing nil, an absent value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{Type: LBool, Bool: b}
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{Type: LInt, Int: x}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{Type: LFloat, Float: x}
}

// Char returns an LVal representing the unicode code point c.
func Char(c rune) *LVal {
	return &LVal{Type: LChar, Char: c}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// List returns an LVal representing a list containing cells.  List takes
// ownership of the argument slice.
func List(cells ...*LVal) *LVal {
	return &LVal{Type: LList, Cells: cells}
}

// String returns a list of characters containing the runes of s.  There is
// no distinct string type.
func String(s string) *LVal {
	cells := make([]*LVal, 0, len(s))
	for _, c := range s {
		cells = append(cells, Char(c))
	}
	return List(cells...)
}

// Quote returns the expression (quote v).
func Quote(v *LVal) *LVal {
	return List(Symbol(QuoteSymbol), v)
}

// Lambda returns anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
func Lambda(formals []string, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: formals,
		Body:    body,
	}
}

// builtinRef returns a function value that invokes the named builtin.
func builtinRef(fun *langBuiltin) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: fun.formals,
		Builtin: fun.name,
	}
}

// Atom classifies a bare literal token.  The literals nil, true and false are
// constants, as is [nil], the display form of nil.  A token made up entirely
// of digits and the runes '.', '+', '-' and 'e' is a float when it contains
// exactly one '.' and an integer when it contains none.  Anything else,
// including numeric looking tokens that fail to parse, is a symbol.
func Atom(text string) *LVal {
	switch text {
	case "nil", "[nil]":
		return Nil()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if !isNumeric(text) {
		return Symbol(text)
	}
	switch strings.Count(text, ".") {
	case 0:
		x, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Symbol(text)
		}
		return Int(x)
	case 1:
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Symbol(text)
		}
		return Float(x)
	default:
		return Symbol(text)
	}
}

const numericRunes = "0123456789.+-e"

func isNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, c := range text {
		if !strings.ContainsRune(numericRunes, c) {
			return false
		}
	}
	return true
}

// IsNil returns true if v is nil.  The empty list is not nil.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Arity returns the number of arguments a function value still expects.
func (v *LVal) Arity() int {
	if v.Type != LLambda {
		return 0
	}
	return len(v.Formals) - len(v.Bound)
}

// IsString returns true if v is a list in which every element is a
// character.  The empty list is a string.
func (v *LVal) IsString() bool {
	if v.Type != LList {
		return false
	}
	for _, c := range v.Cells {
		if c.Type != LChar {
			return false
		}
	}
	return true
}

// Text returns the go string held by a list of characters.  The second
// return value is false if v is not a string.
func (v *LVal) Text() (string, bool) {
	if !v.IsString() {
		return "", false
	}
	var buf strings.Builder
	for _, c := range v.Cells {
		buf.WriteRune(c.Char)
	}
	return buf.String(), true
}

// Equal reports whether v and other are structurally equal.  Lists are
// compared element-wise.  Functions are never equal to anything.
func (v *LVal) Equal(other *LVal) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LNil:
		return true
	case LBool:
		return v.Bool == other.Bool
	case LInt:
		return v.Int == other.Int
	case LFloat:
		return v.Float == other.Float
	case LChar:
		return v.Char == other.Char
	case LSymbol:
		return v.Str == other.Str
	case LList:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Copy creates a deep copy of the receiver.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	if v.Formals != nil {
		cp.Formals = append([]string(nil), v.Formals...)
	}
	if v.Bound != nil {
		cp.Bound = make([]*LVal, len(v.Bound))
		for i := range v.Bound {
			cp.Bound[i] = v.Bound[i].Copy()
		}
	}
	cp.Body = v.Body.Copy()
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if v.Cells == nil {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// String returns the display form of v.
func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "[nil]"
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LInt:
		return strconv.FormatInt(v.Int, 10)
	case LFloat:
		return formatFloat(v.Float)
	case LChar:
		return string(v.Char)
	case LSymbol:
		return v.Str
	case LList:
		return exprString(v, "{", "}", (*LVal).String)
	case LLambda:
		return "[lambda]"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// DebugString returns the display form of v with a bracketed type tag
// appended to each value.
func (v *LVal) DebugString() string {
	switch v.Type {
	case LNil, LLambda:
		return v.String()
	case LList:
		if len(v.Cells) == 0 {
			return "{<empty>} [list]"
		}
		return exprString(v, "{", "}", (*LVal).DebugString) + " [list]"
	default:
		return v.String() + " [" + v.Type.String() + "]"
	}
}

// formatFloat always includes a decimal point so that the display form of a
// float reads back as a float.
func formatFloat(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func exprString(v *LVal, left string, right string, str func(*LVal) string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(str(c))
	}
	buf.WriteString(right)
	return buf.String()
}
