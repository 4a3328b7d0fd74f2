package lexer

import (
	"strings"
	"unicode"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/parser/token"
)

// delimiters end an atom without being part of it.
const delimiters = "()'`\"|" + string(lisp.CharDelimiter)

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
	eof     bool
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken returns the next token in the source text.  After the source is
// exhausted NextToken returns EOF tokens indefinitely.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	if !lex.readChar() {
		return lex.scanner.EmitToken(token.EOF)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '`':
		return lex.scanner.EmitToken(token.BACKQUOTE)
	case '"':
		return lex.delimited(token.STRING, '"', "unterminated string literal")
	case lisp.CharDelimiter:
		return lex.delimited(token.CHAR, lisp.CharDelimiter, "unterminated character literal")
	case '|':
		for {
			if !lex.readChar() {
				return lex.scanner.EmitError("unterminated lambda parameter list")
			}
			if lex.ch == '|' {
				return lex.scanner.EmitToken(token.PARAMS)
			}
		}
	default:
		return lex.atom()
	}
}

// delimited scans a literal terminated by an unescaped delim.  Escape
// sequences are validated by the parser.
func (lex *Lexer) delimited(typ token.Type, delim rune, unterminated string) *token.Token {
	for {
		if !lex.readChar() {
			return lex.scanner.EmitError(unterminated)
		}
		switch lex.ch {
		case delim:
			return lex.scanner.EmitToken(typ)
		case '\\':
			if !lex.readChar() {
				return lex.scanner.EmitError(unterminated)
			}
		}
	}
}

func (lex *Lexer) atom() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || unicode.IsSpace(c) || strings.ContainsRune(delimiters, c) {
			return lex.scanner.EmitToken(token.ATOM)
		}
		lex.readChar()
	}
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			lex.scanner.Ignore()
			return
		}
		lex.readChar()
	}
}

func (lex *Lexer) readChar() bool {
	if !lex.scanner.ScanRune() {
		lex.eof = true
		return false
	}
	lex.ch = lex.scanner.Rune()
	return true
}
