// Package lisptest runs lisp expressions and source files as go tests.
package lisptest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/lisp/lisplib"
	"github.com/bmatsuo/tlisp/parser"
)

// Runner is a test runner.
type Runner struct {
	// NoLibrary disables loading the standard library into test
	// interpreters.
	NoLibrary bool
	// Config is applied to each test interpreter after its output streams
	// have been configured.
	Config []lisp.Config
}

// NewInterpreter returns an interpreter writing program output to stdout
// and error reports to stderr.
func (r *Runner) NewInterpreter(stdout, stderr *bytes.Buffer) *lisp.Interpreter {
	config := []lisp.Config{
		lisp.WithStdout(stdout),
		lisp.WithStderr(stderr),
	}
	config = append(config, r.Config...)
	if r.NoLibrary {
		config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
		return lisp.NewInterpreter(config...)
	}
	return lisplib.NewInterpreter(config...)
}

// RunTestFile loads the source file at path.  The test fails if any form in
// the file reports an error.
func (r *Runner) RunTestFile(t *testing.T, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	var stdout, stderr bytes.Buffer
	ip := r.NewInterpreter(&stdout, &stderr)
	err = ip.Load(filepath.Base(path), bytes.NewReader(source))
	if err != nil {
		t.Errorf("%s: %v", path, err)
		return
	}
	if stderr.Len() > 0 {
		t.Errorf("%s: errors reported:\n%s", path, stderr.String())
	}
	if testing.Verbose() && stdout.Len() > 0 {
		t.Logf("%s: output:\n%s", path, stdout.String())
	}
}

// BenchmarkParse returns a benchmark that splits the source file at path
// into forms and parses each of them using a Reader returned by newReader.
func BenchmarkParse(path string, newReader func() lisp.Reader) func(*testing.B) {
	return func(b *testing.B) {
		source, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Unable to read test file: %v", err)
		}
		name := filepath.Base(path)
		rd := newReader()
		b.SetBytes(int64(len(source)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			forms, err := rd.Forms(name, bytes.NewReader(source))
			if err != nil {
				b.Fatal(err)
			}
			for _, form := range forms {
				if form.Err != nil {
					b.Fatal(form.Err)
				}
				_, err := rd.Parse(name, form.Text)
				if err != nil {
					b.Fatal(err)
				}
			}
		}
	}
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Interpreter.  Result is the display form of the
// value of Expr, or the message of the error it raised.  Output is
// everything Expr wrote to stdout.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // the printed output
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters
// with the standard library loaded.
func RunTestSuite(t *testing.T, tests TestSuite) {
	var r Runner
	r.RunTestSuite(t, tests)
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stdout, stderr bytes.Buffer
		ip := r.NewInterpreter(&stdout, &stderr)
		for j, expr := range test.TestSequence {
			stdout.Reset()
			var result string
			v, err := ip.EvalString(expr.Expr)
			if err != nil {
				result = err.Error()
			} else {
				result = v.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}
