/*
Package parser provides a lisp reader.

	program := <expr>*
	expr    := '(' <params>? <expr>* ')' | '\'' <expr> | '`' <expr>
	         | <string> | <char> | <atom>
	params  := '|' <symbol>* '|'
	string  := '"' <strcontent> '"'
	char    := '´' <strcontent> '´'
	atom    := /[^[:space:]()'`"|´]+/

An atom is classified as nil, a boolean, an integer, a float or a symbol by
lisp.Atom.  A quoted expression 'x is read as (quote x) and `x is read as
(eval x).  A string is read as the quoted list of its characters.  The
list (|a b| body) is shorthand for (lambda (a b) body).
*/
package parser

import (
	"io"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/parser/rdparser"
)

type reader struct{}

// NewReader returns a lisp.Reader to use in a lisp.Interpreter.
func NewReader() lisp.Reader {
	return &reader{}
}

// Parse implements lisp.Reader.
func (*reader) Parse(name string, text string) (*lisp.LVal, error) {
	return rdparser.Parse(name, text)
}

// Forms implements lisp.Reader.
func (*reader) Forms(name string, r io.Reader) ([]lisp.Form, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SplitForms(name, text), nil
}

// Parse parses text and returns an expression list containing its top-level
// items.
func Parse(text string) (*lisp.LVal, error) {
	return rdparser.Parse("", text)
}
