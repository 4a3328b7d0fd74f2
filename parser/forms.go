package parser

import (
	"bytes"
	"fmt"
	"strings"

	parsec "github.com/prataprc/goparsec"

	"github.com/bmatsuo/tlisp/lisp"
)

type formNode struct{}

type skipNode struct{}

// SplitForms returns the text of each top-level parenthesized form in text,
// including a leading ' or ` prefix.  Text between forms is ignored so
// source files may carry free-form documentation, as long as that
// documentation contains no parentheses or unbalanced double quotes.
//
// A stray closing bracket is reported as an error Form and splitting resumes
// after it.  An unclosed form or string swallows the rest of text, so it is
// reported and splitting stops.
func SplitForms(name string, text []byte) []lisp.Form {
	s := parsec.NewScanner(text)
	split := newFormSplitter()
	var forms []lisp.Form
	for !s.Endof() {
		start := s.GetCursor()
		node, news := split(s)
		if node == nil {
			rest := bytes.TrimLeft(text[start:], " \t\r\n")
			if len(rest) == 0 {
				break
			}
			pos := len(text) - len(rest)
			forms = append(forms, lisp.Form{Err: splitError(name, text, pos)})
			if rest[0] != ')' {
				break
			}
			_, s = s.SkipAny(`\s*\)`)
			continue
		}
		if _, ok := node.(formNode); ok {
			form := strings.TrimSpace(string(text[start:news.GetCursor()]))
			forms = append(forms, lisp.Form{Text: form})
		}
		s = news
	}
	return forms
}

func splitError(name string, text []byte, pos int) error {
	line := bytes.Count(text[:pos], []byte("\n")) + 1
	if name == "" {
		name = "<input>"
	}
	var msg string
	switch text[pos] {
	case ')':
		msg = "closed bracket before opening it"
	case '(':
		msg = "reached end of code before closing bracket"
	case '"':
		msg = "unterminated string literal"
	default:
		msg = fmt.Sprintf("unexpected %q", text[pos])
	}
	return &lisp.Error{
		Origin:  "parse",
		Message: fmt.Sprintf("%s:%d: %s", name, line, msg),
	}
}

func newFormSplitter() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	prefix := parsec.Token("['`]+", "PREFIX")
	str := parsec.Token(`"(?:\\.|[^"\\])*"`, "STRING")
	char := parsec.Token(`´(?:\\.|[^´\\])*´`, "CHAR")
	atom := parsec.Token(`[^\s()"´]+`, "ATOM")
	junk := parsec.Token("[^()\"'`]+", "JUNK")
	mark := parsec.Token("['`]", "MARK")

	var form parsec.Parser // forward declaration allows for recursive parsing
	item := parsec.OrdChoice(skip, str, char, &form, atom)
	items := parsec.Kleene(skip, &item)
	form = parsec.And(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return formNode{}
	}, openP, items, closeP)
	quoted := parsec.And(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return formNode{}
	}, prefix, form)
	// a quote mark in documentation is skipped on its own so that junk never
	// swallows the prefix of a quoted form.
	return parsec.OrdChoice(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return nodes[0]
	}, form, quoted, parsec.OrdChoice(skip, str, junk, mark))
}

func skip(nodes []parsec.ParsecNode) parsec.ParsecNode {
	return skipNode{}
}
