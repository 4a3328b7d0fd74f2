package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmatsuo/tlisp/lisp"
)

func formText(forms []lisp.Form) []string {
	var text []string
	for _, form := range forms {
		if form.Err != nil {
			text = append(text, "error: "+form.Err.Error())
			continue
		}
		text = append(text, form.Text)
	}
	return text
}

func TestSplitForms(t *testing.T) {
	tests := []struct {
		source string
		forms  []string
	}{
		{"", nil},
		{"  \n ", nil},
		{"(a)", []string{"(a)"}},
		{"(a) (b c)\n(d (e))", []string{"(a)", "(b c)", "(d (e))"}},
		{"some words (a) more words\n(b)\ntrailing", []string{"(a)", "(b)"}},
		{"(a\n  (b)\n  c)", []string{"(a\n  (b)\n  c)"}},
		{`(puts ")(")`, []string{`(puts ")(")`}},
		{`(puts "a \"(\" b")`, []string{`(puts "a \"(\" b")`}},
		{"(list ´(´ ´)´)", []string{"(list ´(´ ´)´)"}},
		{"(x 'y `z |w|)", []string{"(x 'y `z |w|)"}},
		{"doc isn't a problem (a)", []string{"(a)"}},
		{`"a string" (a)`, []string{"(a)"}},
		{"'(a b)", []string{"'(a b)"}},
		{"`(a b)", []string{"`(a b)"}},
		{"(a)\n'(b c)\n`(d)", []string{"(a)", "'(b c)", "`(d)"}},
		{"''(a)", []string{"''(a)"}},
		{"don't 'panic (a)", []string{"(a)"}},
	}
	for _, test := range tests {
		forms := SplitForms("test", []byte(test.source))
		assert.Equal(t, test.forms, formText(forms), "%q", test.source)
	}
}

func TestSplitFormsErrors(t *testing.T) {
	tests := []struct {
		source string
		forms  []string
	}{
		{"(a", []string{
			"error: parse: test:1: reached end of code before closing bracket",
		}},
		{"(a)\n\n  (b (c)", []string{
			"(a)",
			"error: parse: test:3: reached end of code before closing bracket",
		}},
		{"(a))", []string{
			"(a)",
			"error: parse: test:1: closed bracket before opening it",
		}},
		{"words\n)", []string{
			"error: parse: test:2: closed bracket before opening it",
		}},
		{`(a) "open`, []string{
			"(a)",
			"error: parse: test:1: unterminated string literal",
		}},
		{"(a)\n(b))\n) (c)\n(d", []string{
			"(a)",
			"(b)",
			"error: parse: test:2: closed bracket before opening it",
			"error: parse: test:3: closed bracket before opening it",
			"(c)",
			"error: parse: test:4: reached end of code before closing bracket",
		}},
	}
	for _, test := range tests {
		forms := SplitForms("test", []byte(test.source))
		assert.Equal(t, test.forms, formText(forms), "%q", test.source)
	}

	forms := SplitForms("", []byte("("))
	require.Len(t, forms, 1)
	require.Error(t, forms[0].Err)
	assert.Equal(t, "parse", lisp.AsError(forms[0].Err).Origin)
	assert.Equal(t, "parse: <input>:1: reached end of code before closing bracket", forms[0].Err.Error())
}
