package lisptest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmatsuo/tlisp/lisp"
)

func TestLoad(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{NoLibrary: true}
	ip := r.NewInterpreter(&stdout, &stderr)

	source := `
Free text between forms is ignored.

(set 'a 1)
(throw "bad")
(global 'b (add a 1))
(print b)
`
	err := ip.Load("test.lisp", strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, "Error: bad\n", stderr.String())
	assert.Equal(t, "2\n", stdout.String())

	v, ok := ip.Global("b")
	require.True(t, ok)
	assert.Equal(t, "2", v.String())
}

func TestLoadParseError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{NoLibrary: true}
	ip := r.NewInterpreter(&stdout, &stderr)

	// a form that splits but does not parse is reported and skipped.
	err := ip.Load("bad.lisp", strings.NewReader("(print 1)\n(print ´ab´)\n(print 3)"))
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", stdout.String())
	assert.Contains(t, stderr.String(), "character literal must contain exactly one character")

	// forms around unbalanced brackets are still evaluated.
	stdout.Reset()
	stderr.Reset()
	err = ip.Load("bad.lisp", strings.NewReader("(print 1)\n(print 2))\n(print 3)"))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", stdout.String())
	assert.Equal(t, "Error: parse: bad.lisp:2: closed bracket before opening it\n", stderr.String())

	stdout.Reset()
	stderr.Reset()
	err = ip.Load("bad.lisp", strings.NewReader("(print 1)\n(print 2"))
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout.String())
	assert.Equal(t, "Error: parse: bad.lisp:2: reached end of code before closing bracket\n", stderr.String())
}

func TestLoadQuoted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{NoLibrary: true}
	ip := r.NewInterpreter(&stdout, &stderr)

	err := ip.Load("quoted.lisp", strings.NewReader("'(nosuchfn 1)\n(global 'x `(add 1 2))\n(print x)"))
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Equal(t, "3\n", stdout.String())
}

func TestLoadScript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{}
	ip := r.NewInterpreter(&stdout, &stderr)

	path := filepath.Join(t.TempDir(), "script.lisp")
	err := os.WriteFile(path, []byte(`(putsln (format "$$ $$" (fact 3) (inc 1)))`), 0644)
	require.NoError(t, err)
	require.NoError(t, ip.LoadScript(path))
	assert.Equal(t, "6 2\n", stdout.String())
	assert.Empty(t, stderr.String())

	err = ip.LoadScript(filepath.Join(t.TempDir(), "missing.lisp"))
	assert.Error(t, err)
}

func TestNoReader(t *testing.T) {
	ip := lisp.NewInterpreter()
	_, err := ip.EvalString("(add 1 2)")
	assert.Equal(t, lisp.ErrNoReader, err)
	err = ip.Load("x", strings.NewReader(""))
	assert.Equal(t, lisp.ErrNoReader, err)

	// expressions can still be evaluated directly.
	v, err := ip.Eval(lisp.List(lisp.Symbol("add"), lisp.Int(1), lisp.Int(2)))
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.lisp"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	r := &Runner{}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			r.RunTestFile(t, path)
		})
	}
}
