package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/parser/lexer"
	"github.com/bmatsuo/tlisp/parser/token"
	"github.com/chzyer/readline"
)

// Option configures RunRepl.
type Option func(*repl)

// WithDebug makes the repl print results in their debug form, with a type
// tag attached to each value.
func WithDebug(debug bool) Option {
	return func(r *repl) {
		r.debug = debug
	}
}

type repl struct {
	ip    *lisp.Interpreter
	debug bool
}

// RunRepl runs a simple repl reading expressions for ip until the input is
// closed.  Input is accumulated across lines until its brackets balance.
func RunRepl(ip *lisp.Interpreter, prompt string, opts ...Option) error {
	r := &repl{ip: ip}
	for _, opt := range opts {
		opt(r)
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		buf = append(buf, line)
		text := strings.Join(buf, "\n")
		if strings.TrimSpace(text) == "" {
			buf = nil
			continue
		}
		if incomplete(text) {
			rl.SetPrompt(contPrompt)
			continue
		}
		buf = nil
		rl.SetPrompt(prompt)
		r.eval(rl.Stdout(), text)
	}
}

func (r *repl) eval(w io.Writer, text string) {
	v, err := r.ip.EvalString(text)
	if err != nil {
		r.ip.PrintError(err)
		return
	}
	fmt.Fprintln(w, r.ip.Format(v, r.debug))
}

// incomplete returns true if text has more opening brackets than closing
// brackets, or ends inside a literal.  Unmatched closing brackets are left
// for the parser to report.
func incomplete(text string) bool {
	lex := lexer.New(token.NewScanner("", text))
	depth := 0
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return depth > 0
		case token.ERROR:
			return strings.HasPrefix(tok.Text, "unterminated")
		case token.PAREN_L:
			depth++
		case token.PAREN_R:
			depth--
		}
	}
}
