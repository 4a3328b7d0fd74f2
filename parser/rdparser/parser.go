package rdparser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/parser/lexer"
	"github.com/bmatsuo/tlisp/parser/token"
)

// Parse parses text and returns an expression list containing its top-level
// items.
func Parse(name string, text string) (*lisp.LVal, error) {
	p := New(token.NewScanner(name, text))
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses expressions until the end of the source and returns
// them as a single list.
func (p *Parser) ParseProgram() (*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.expect(token.EOF) {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return lisp.List(exprs...), nil
}

func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	switch p.PeekType() {
	case token.ATOM:
		p.ReadToken()
		return lisp.Atom(p.Token().Text), nil
	case token.STRING:
		return p.ParseLiteralString()
	case token.CHAR:
		return p.ParseLiteralChar()
	case token.QUOTE:
		return p.ParsePrefix(token.QUOTE, lisp.QuoteSymbol)
	case token.BACKQUOTE:
		return p.ParsePrefix(token.BACKQUOTE, lisp.EvalSymbol)
	case token.PAREN_L:
		return p.ParseList()
	case token.PAREN_R:
		p.ReadToken()
		return nil, p.errorf("closed bracket before opening it")
	case token.PARAMS:
		p.ReadToken()
		return nil, p.errorf("lambda parameter list %s must begin a list", p.Token().Text)
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf("%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Type)
	}
}

// ParseLiteralString reads a string literal as the quoted list of its
// characters.
func (p *Parser) ParseLiteralString() (*lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	s, err := unescape(text[1 : len(text)-1])
	if err != nil {
		return nil, p.errorf("invalid string literal: %v", err)
	}
	return lisp.Quote(lisp.String(s)), nil
}

func (p *Parser) ParseLiteralChar() (*lisp.LVal, error) {
	if !p.expect(token.CHAR) {
		return nil, p.errorf("invalid character literal: %v", p.PeekType())
	}
	text := p.Token().Text
	n := utf8.RuneLen(lisp.CharDelimiter)
	s, err := unescape(text[n : len(text)-n])
	if err != nil {
		return nil, p.errorf("invalid character literal: %v", err)
	}
	if utf8.RuneCountInString(s) != 1 {
		return nil, p.errorf("character literal must contain exactly one character: %s", text)
	}
	c, _ := utf8.DecodeRuneInString(s)
	return lisp.Char(c), nil
}

// ParsePrefix reads a prefixed expression x as the list (sym x).
func (p *Parser) ParsePrefix(typ token.Type, sym string) (*lisp.LVal, error) {
	if !p.expect(typ) {
		return nil, p.errorf("invalid %s: %v", typ, p.PeekType())
	}
	switch p.PeekType() {
	case token.EOF, token.PAREN_R:
		return nil, p.errorf("expected expression after %s", typ)
	}
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return lisp.List(lisp.Symbol(sym), x), nil
}

func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf("invalid list: %v", p.PeekType())
	}
	var params *lisp.LVal
	if p.expect(token.PARAMS) {
		var err error
		params, err = p.parseParams(p.Token().Text)
		if err != nil {
			return nil, err
		}
	}
	var cells []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			return nil, p.errorf("reached end of code before closing bracket")
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	if params == nil {
		return lisp.List(cells...), nil
	}
	var body *lisp.LVal
	switch len(cells) {
	case 0:
		return nil, p.errorf("lambda shorthand has no body")
	case 1:
		body = cells[0]
	default:
		body = lisp.List(cells...)
	}
	return lisp.List(lisp.Symbol(lisp.LambdaSymbol), params, body), nil
}

// parseParams reads the names between the bars of a |a b| token.
func (p *Parser) parseParams(text string) (*lisp.LVal, error) {
	fields := strings.FieldsFunc(text[1:len(text)-1], unicode.IsSpace)
	params := make([]*lisp.LVal, len(fields))
	for i, f := range fields {
		v := lisp.Atom(f)
		if v.Type != lisp.LSymbol {
			return nil, p.errorf("lambda parameter is not a symbol: %s", f)
		}
		params[i] = v
	}
	return lisp.List(params...), nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	return &lisp.Error{
		Origin:  "parse",
		Message: fmt.Sprintf("%s: %s", p.Token().Source, fmt.Sprintf(format, v...)),
	}
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',

	lisp.CharDelimiter: lisp.CharDelimiter,
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var buf strings.Builder
	escaped := false
	for _, c := range s {
		switch {
		case escaped:
			r, ok := escapes[c]
			if !ok {
				return "", fmt.Errorf("unknown escape sequence \\%c", c)
			}
			buf.WriteRune(r)
			escaped = false
		case c == '\\':
			escaped = true
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String(), nil
}
