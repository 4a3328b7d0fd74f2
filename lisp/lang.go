package lisp

// Symbols the reader produces when expanding shorthand syntax.
const (
	QuoteSymbol  = "quote"
	EvalSymbol   = "eval"
	LambdaSymbol = "lambda"
)

// CharDelimiter surrounds a character literal, as in ´a´ or ´\n´.
const CharDelimiter = '´'

// FormatPlaceholder marks a substitution point in a format template.
const FormatPlaceholder = "$$"

// DefaultMaxHeight is the maximum number of scopes an environment allows
// unless configured otherwise.
const DefaultMaxHeight = 50000

// MaxListLength bounds the length of a list built from a numeric range.
const MaxListLength = 1 << 24
