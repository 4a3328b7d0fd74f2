package lisp

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrNoReader is returned when source text is evaluated by an interpreter
// that has no Reader.
var ErrNoReader = errors.New("no reader configured")

// Interpreter evaluates lisp expressions against a persistent global scope.
// An Interpreter must not be used by multiple goroutines concurrently.
type Interpreter struct {
	env *LEnv
}

// NewInterpreter returns an interpreter with an empty global scope, writing
// to os.Stdout and os.Stderr, after applying config in order.  A Config that
// fails is logged and does not prevent the remaining options from being
// applied.
func NewInterpreter(config ...Config) *Interpreter {
	ip := &Interpreter{env: NewEnv(nil)}
	for _, fn := range config {
		if err := fn(ip); err != nil {
			ip.Logger().Warn("interpreter configuration failed", "error", err)
		}
	}
	return ip
}

// Env returns the environment of the interpreter.
func (ip *Interpreter) Env() *LEnv {
	return ip.env
}

// Logger returns the logger of the interpreter.
func (ip *Interpreter) Logger() *slog.Logger {
	return ip.env.Runtime.Logger
}

// Global returns the value bound to name in the global scope.
func (ip *Interpreter) Global(name string) (*LVal, bool) {
	v, ok := ip.env.Scopes[0][name]
	return v, ok
}

// Eval evaluates expr in a scope directly above the global scope.  Bindings
// created by set at the top level of expr persist in the global scope.
func (ip *Interpreter) Eval(expr *LVal) (*LVal, error) {
	defer ip.reset()
	if expr.Type == LList {
		return ip.env.EvalList(expr, nil)
	}
	return ip.env.Resolve(expr)
}

// EvalString parses text and evaluates it as a single expression list.
func (ip *Interpreter) EvalString(text string) (*LVal, error) {
	return ip.EvalNamed("", text)
}

// EvalNamed is like EvalString but name identifies the source text in parse
// errors.  When text contains a single top-level item that item is
// evaluated directly, so a lone atom evaluates to its value and a lone form
// evaluates with the global scope directly beneath it.
func (ip *Interpreter) EvalNamed(name string, text string) (*LVal, error) {
	rd := ip.env.Runtime.Reader
	if rd == nil {
		return nil, ErrNoReader
	}
	expr, err := rd.Parse(name, text)
	if err != nil {
		return nil, err
	}
	if expr.Len() == 1 {
		return ip.Eval(expr.Cells[0])
	}
	return ip.Eval(expr)
}

// Load evaluates each top-level form read from r.  A form which fails to
// split, parse or evaluate is reported to the interpreter's stderr and does
// not prevent later forms from being evaluated.  Load returns an error only
// when r cannot be read.
func (ip *Interpreter) Load(name string, r io.Reader) error {
	rd := ip.env.Runtime.Reader
	if rd == nil {
		return ErrNoReader
	}
	forms, err := rd.Forms(name, r)
	if err != nil {
		return err
	}
	ip.Logger().Debug("loading source", "source", name, "forms", len(forms))
	for i, form := range forms {
		if form.Err != nil {
			ip.PrintError(form.Err)
			continue
		}
		_, err := ip.EvalNamed(name, form.Text)
		if err != nil {
			ip.Logger().Debug("form failed", "source", name, "form", i, "error", err)
			ip.PrintError(err)
		}
	}
	return nil
}

// LoadScript loads the forms of the file at path.
func (ip *Interpreter) LoadScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ip.Load(filepath.Base(path), f)
}

// PrintError writes err and its trace to the interpreter's stderr.
func (ip *Interpreter) PrintError(err error) {
	_, werr := AsError(err).DebugPrint(ip.env.Runtime.Stderr)
	if werr != nil {
		ip.Logger().Error("unable to write error", "error", werr)
	}
}

// Format returns the display form of v, for printing results.
func (ip *Interpreter) Format(v *LVal, debug bool) string {
	if debug {
		return v.DebugString()
	}
	return v.String()
}

func (ip *Interpreter) reset() {
	if ip.env.Height() != 1 {
		ip.Logger().Error("unbalanced stack after evaluation", "height", ip.env.Height())
		ip.env.Scopes = ip.env.Scopes[:1]
	}
}

